package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// NewTestClient creates a client whose API root is baseURL + "/api".
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &admin.Config{APIEndpoint: baseURL})
	require.NoError(t, err)

	return client
}

// TestIndexOperation represents a generic list operation test case.
type TestIndexOperation struct {
	Name          string
	Query         *admin.Query
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrMessage    string
	WantCount     int
}

// TestShowOperation represents a generic show operation test case.
type TestShowOperation struct {
	Name         string
	ID           int
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestWriteOperation represents a generic store or update test case.
type TestWriteOperation struct {
	Name         string
	ID           int
	Request      interface{}
	ExpectedPath string
	ExpectedBody string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete, restore or purge test case.
type TestDeleteOperation struct {
	Name           string
	ID             int
	ExpectedPath   string
	ExpectedMethod string
	StatusCode     int
	Response       interface{}
	WantErr        bool
	ErrMessage     string
}

// writeJSON writes status and an optional JSON body.
func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	if body != nil {
		writer.Header().Set("Content-Type", "application/json")
	}

	if status == 0 {
		status = http.StatusOK
	}

	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

func assertError(t *testing.T, err error, errMessage string) {
	t.Helper()

	require.Error(t, err)

	if errMessage != "" {
		assert.Contains(t, err.Error(), errMessage)
	}
}

// RunIndexTests runs a series of list operation tests.
func RunIndexTests[T any](
	t *testing.T,
	tests []TestIndexOperation,
	indexFunc func(*Client) func(context.Context, *admin.Query) (*admin.ListResponse[T], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)

				if testCase.ExpectedQuery != "" {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				}

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			result, err := indexFunc(NewTestClient(t, server.URL))(context.Background(), testCase.Query)

			if testCase.WantErr {
				assertError(t, err, testCase.ErrMessage)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Len(t, result.Data, testCase.WantCount)
		})
	}
}

// RunShowTests runs a series of show operation tests.
func RunShowTests[T any](
	t *testing.T,
	tests []TestShowOperation,
	showFunc func(*Client) func(context.Context, int) (*T, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			result, err := showFunc(NewTestClient(t, server.URL))(context.Background(), testCase.ID)

			if testCase.WantErr {
				assertError(t, err, testCase.ErrMessage)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

// RunStoreTests runs a series of create operation tests.
func RunStoreTests[T any](
	t *testing.T,
	tests []TestWriteOperation,
	storeFunc func(*Client) func(context.Context, any) (*T, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(writeHandler(t, testCase, http.MethodPost))
			defer server.Close()

			result, err := storeFunc(NewTestClient(t, server.URL))(context.Background(), testCase.Request)

			if testCase.WantErr {
				assertError(t, err, testCase.ErrMessage)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[T any](
	t *testing.T,
	tests []TestWriteOperation,
	updateFunc func(*Client) func(context.Context, int, any) (*T, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(writeHandler(t, testCase, http.MethodPut))
			defer server.Close()

			result, err := updateFunc(NewTestClient(t, server.URL))(context.Background(), testCase.ID, testCase.Request)

			if testCase.WantErr {
				assertError(t, err, testCase.ErrMessage)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

func writeHandler(t *testing.T, testCase TestWriteOperation, method string) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
		assert.Equal(t, method, request.Method)

		if testCase.ExpectedBody != "" {
			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, testCase.ExpectedBody, string(body))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		}

		writeJSON(writer, testCase.StatusCode, testCase.Response)
	}
}

// RunDeleteTests runs a series of delete, restore or purge operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, int) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			method := testCase.ExpectedMethod
			if method == "" {
				method = http.MethodDelete
			}

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, method, request.Method)
				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			err := deleteFunc(NewTestClient(t, server.URL))(context.Background(), testCase.ID)

			if testCase.WantErr {
				assertError(t, err, testCase.ErrMessage)

				return
			}

			require.NoError(t, err)
		})
	}
}
