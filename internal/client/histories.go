package client

import (
	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// TransactionHistoriesClient implements admin.TransactionHistoriesClient.
type TransactionHistoriesClient struct {
	*ResourceClient[admin.TransactionHistory]
}

// NewTransactionHistoriesClient creates a new transaction histories client.
func NewTransactionHistoriesClient(httpClient *http.Client) *TransactionHistoriesClient {
	return &TransactionHistoriesClient{
		ResourceClient: NewResourceClient[admin.TransactionHistory](httpClient, "transactionHistories", "transaction history"),
	}
}

// CurrencyHistoriesClient implements admin.CurrencyHistoriesClient.
type CurrencyHistoriesClient struct {
	*ResourceClient[admin.CurrencyHistory]
}

// NewCurrencyHistoriesClient creates a new currency histories client.
func NewCurrencyHistoriesClient(httpClient *http.Client) *CurrencyHistoriesClient {
	return &CurrencyHistoriesClient{
		ResourceClient: NewResourceClient[admin.CurrencyHistory](httpClient, "currencyHistories", "currency history"),
	}
}

var (
	_ admin.TransactionHistoriesClient = (*TransactionHistoriesClient)(nil)
	_ admin.CurrencyHistoriesClient    = (*CurrencyHistoriesClient)(nil)
)
