package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// NewResourceCommands creates one command group per admin resource.
func NewResourceCommands() []*cobra.Command {
	return []*cobra.Command{
		achievementsDef().command(),
		missionsDef().command(),
		terrainsDef().command(),
		vouchersDef().command(),
		itemsDef().command(),
		skinsDef().command(),
		NewProductsCommand(),
		currenciesDef().command(),
		adsDef().command(),
		usersDef().command(),
		gameUsersDef().command(),
		NewAddressesCommand(),
		transactionHistoriesDef().command(),
		currencyHistoriesDef().command(),
	}
}

func achievementsDef() resourceDef[admin.Achievement] {
	return resourceDef[admin.Achievement]{
		Name:     "achievements",
		Aliases:  []string{"achievement"},
		Singular: "achievement",
		Header:   []string{"ID", "Name", "Description", "Max Score", "Reward Type", "Reward Value", "Active"},
		Row: func(item admin.Achievement) []string {
			return []string{
				strconv.Itoa(item.ID), item.Name, formatOptionalString(item.Description),
				strconv.Itoa(item.MaxScore), formatOptionalString(item.RewardType),
				strconv.Itoa(item.RewardValue), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Achievement] { return client.Achievements() },
		Show:   func(client admin.Client) admin.Shower[admin.Achievement] { return client.Achievements() },
		Store:  func(client admin.Client) admin.Storer[admin.Achievement] { return client.Achievements() },
		Delete: func(client admin.Client) admin.Deleter { return client.Achievements() },
	}
}

func missionsDef() resourceDef[admin.Mission] {
	return resourceDef[admin.Mission]{
		Name:     "missions",
		Aliases:  []string{"mission"},
		Singular: "mission",
		Header:   []string{"ID", "Name", "Description", "Max Score", "Reward Type", "Reward Value", "Active"},
		Row: func(item admin.Mission) []string {
			return []string{
				strconv.Itoa(item.ID), item.Name, formatOptionalString(item.Description),
				strconv.Itoa(item.MaxScore), formatOptionalString(item.RewardType),
				strconv.Itoa(item.RewardValue), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Mission] { return client.Missions() },
		Show:   func(client admin.Client) admin.Shower[admin.Mission] { return client.Missions() },
		Store:  func(client admin.Client) admin.Storer[admin.Mission] { return client.Missions() },
		Delete: func(client admin.Client) admin.Deleter { return client.Missions() },
	}
}

func terrainsDef() resourceDef[admin.Terrain] {
	return resourceDef[admin.Terrain]{
		Name:     "terrains",
		Aliases:  []string{"terrain"},
		Singular: "terrain",
		Header:   []string{"ID", "Name", "Description", "Default", "Active"},
		Row: func(item admin.Terrain) []string {
			return []string{
				strconv.Itoa(item.ID), item.Name, formatOptionalString(item.Description),
				formatBool(item.IsDefault), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Terrain] { return client.Terrains() },
		Show:   func(client admin.Client) admin.Shower[admin.Terrain] { return client.Terrains() },
		Store:  func(client admin.Client) admin.Storer[admin.Terrain] { return client.Terrains() },
		Delete: func(client admin.Client) admin.Deleter { return client.Terrains() },
	}
}

func vouchersDef() resourceDef[admin.Voucher] {
	return resourceDef[admin.Voucher]{
		Name:     "vouchers",
		Aliases:  []string{"voucher"},
		Singular: "voucher",
		Header:   []string{"ID", "Name", "Discount", "Percentage", "Min Price", "Max Claim", "Start", "End", "Active"},
		Row: func(item admin.Voucher) []string {
			minPrice := ""
			if item.MinPrice != nil {
				minPrice = formatFloat(*item.MinPrice)
			}

			return []string{
				strconv.Itoa(item.ID), item.Name, formatFloat(item.DiscountValue),
				formatBool(item.IsPercentageFlatPrice), minPrice, formatOptionalInt(item.MaxClaim),
				formatTimestamp(item.StartDate), formatTimestamp(item.EndDate), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Voucher] { return client.Vouchers() },
		Show:   func(client admin.Client) admin.Shower[admin.Voucher] { return client.Vouchers() },
		Store:  func(client admin.Client) admin.Storer[admin.Voucher] { return client.Vouchers() },
		Delete: func(client admin.Client) admin.Deleter { return client.Vouchers() },
	}
}

func itemsDef() resourceDef[admin.Item] {
	return resourceDef[admin.Item]{
		Name:     "items",
		Aliases:  []string{"item"},
		Singular: "item",
		Header:   []string{"ID", "Name", "Type", "Description", "Product", "Active"},
		Row: func(item admin.Item) []string {
			return []string{
				strconv.Itoa(item.ID), item.Name, item.ItemType, formatOptionalString(item.Description),
				formatProductName(item.Product), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Item] { return client.Items() },
		Show:   func(client admin.Client) admin.Shower[admin.Item] { return client.Items() },
		Store:  func(client admin.Client) admin.Storer[admin.Item] { return client.Items() },
		Delete: func(client admin.Client) admin.Deleter { return client.Items() },
	}
}

func skinsDef() resourceDef[admin.Skin] {
	return resourceDef[admin.Skin]{
		Name:     "skins",
		Aliases:  []string{"skin"},
		Singular: "skin",
		Header:   []string{"ID", "Type", "Tier", "Product"},
		Row: func(item admin.Skin) []string {
			return []string{strconv.Itoa(item.ID), item.SkinType, item.SkinTier, formatProductName(item.Product)}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Skin] { return client.Skins() },
		Show:   func(client admin.Client) admin.Shower[admin.Skin] { return client.Skins() },
		Store:  func(client admin.Client) admin.Storer[admin.Skin] { return client.Skins() },
		Delete: func(client admin.Client) admin.Deleter { return client.Skins() },
	}
}

var productHeader = []string{"ID", "Code", "Name", "Price", "Type", "Active"}

func productRow(item admin.Product) []string {
	return []string{
		strconv.Itoa(item.ID), item.Code, item.Name, formatFloat(item.Price),
		item.ProductType, formatBool(item.IsActive),
	}
}

func productsDef() resourceDef[admin.Product] {
	return resourceDef[admin.Product]{
		Name:     "products",
		Aliases:  []string{"product"},
		Singular: "product",
		Header:   productHeader,
		Row:      productRow,
		Index:    func(client admin.Client) admin.Indexer[admin.Product] { return client.Products() },
		Store:    func(client admin.Client) admin.Storer[admin.Product] { return client.Products() },
		Update:   func(client admin.Client) admin.Updater[admin.Product] { return client.Products() },
		Delete:   func(client admin.Client) admin.Deleter { return client.Products() },
	}
}

// NewProductsCommand creates the products group, which adds the item and
// standalone product lookups to the usual subcommands.
func NewProductsCommand() *cobra.Command {
	def := productsDef()
	cmd := def.command()

	cmd.AddCommand(&cobra.Command{
		Use:       "lookup items|products",
		Short:     "List products by kind",
		Long:      "List the products backing items, or the standalone products, as offered by the product pickers",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"items", "products"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				var (
					response *admin.ListResponse[admin.Product]
					err      error
				)

				switch args[0] {
				case "items":
					response, err = session.client.Products().Items(ctx)
				case "products":
					response, err = session.client.Products().Products(ctx)
				default:
					return fmt.Errorf("%w: lookup %s (use items or products)", constants.ErrUnsupportedOperation, args[0])
				}

				if err != nil {
					return fmt.Errorf("failed to look up %s: %w", args[0], err)
				}

				return renderOutput(cmd.OutOrStdout(), response, func(writer io.Writer) error {
					return def.renderList(writer, response)
				})
			})
		},
	})

	return cmd
}

func currenciesDef() resourceDef[admin.Currency] {
	return resourceDef[admin.Currency]{
		Name:     "currencies",
		Aliases:  []string{"currency"},
		Singular: "currency",
		Header:   []string{"ID", "Type", "Value", "Product", "Price"},
		Row: func(item admin.Currency) []string {
			price := ""
			if item.Product != nil {
				price = formatFloat(item.Product.Price)
			}

			return []string{
				strconv.Itoa(item.ID), item.CurrencyType, strconv.Itoa(item.CurrencyValue),
				formatProductName(item.Product), price,
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.Currency] { return client.Currencies() },
		Store:  func(client admin.Client) admin.Storer[admin.Currency] { return client.Currencies() },
		Update: func(client admin.Client) admin.Updater[admin.Currency] { return client.Currencies() },
		Delete: func(client admin.Client) admin.Deleter { return client.Currencies() },
	}
}

func adsDef() resourceDef[admin.Ad] {
	return resourceDef[admin.Ad]{
		Name:     "ads",
		Aliases:  []string{"ad"},
		Singular: "ad",
		Header:   []string{"ID", "Name", "Type", "URL", "Reward", "Active", "Trashed"},
		Row: func(item admin.Ad) []string {
			return []string{
				strconv.Itoa(item.ID), item.Name, item.AdType, item.URL, strconv.Itoa(item.Reward),
				formatBool(item.IsActive), formatBool(item.IsTrashed()),
			}
		},
		Index:   func(client admin.Client) admin.Indexer[admin.Ad] { return client.Ads() },
		Store:   func(client admin.Client) admin.Storer[admin.Ad] { return client.Ads() },
		Update:  func(client admin.Client) admin.Updater[admin.Ad] { return client.Ads() },
		Delete:  func(client admin.Client) admin.Deleter { return client.Ads() },
		Purge:   func(client admin.Client) admin.PermanentDeleter { return client.Ads() },
		Restore: func(client admin.Client) admin.Restorer { return client.Ads() },
	}
}

func usersDef() resourceDef[admin.User] {
	return resourceDef[admin.User]{
		Name:     "users",
		Aliases:  []string{"user", "admins"},
		Singular: "user",
		Header:   []string{"ID", "Email", "Name", "Role"},
		Row: func(item admin.User) []string {
			name := ""
			if item.Profile != nil {
				name = item.Profile.FullName
			}

			return []string{strconv.Itoa(item.ID), item.Email, name, item.Role}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.User] { return client.Users() },
		Show:   func(client admin.Client) admin.Shower[admin.User] { return client.Users() },
		Store:  func(client admin.Client) admin.Storer[admin.User] { return client.Users() },
		Delete: func(client admin.Client) admin.Deleter { return client.Users() },
	}
}

func gameUsersDef() resourceDef[admin.GameUser] {
	return resourceDef[admin.GameUser]{
		Name:     "gameusers",
		Aliases:  []string{"gameuser", "players"},
		Singular: "game user",
		Header:   []string{"ID", "Username", "Email", "Country", "Platform", "Gems", "Gold", "Highest Score", "Last Login", "Active"},
		Row: func(item admin.GameUser) []string {
			return []string{
				strconv.Itoa(item.ID), item.Username, item.Email, item.Country, item.Platform,
				strconv.Itoa(item.GemAmount), strconv.Itoa(item.GoldAmount), strconv.Itoa(item.HighestScore),
				formatTimestamp(item.LastLogin), formatBool(item.IsActive),
			}
		},
		Index:  func(client admin.Client) admin.Indexer[admin.GameUser] { return client.GameUsers() },
		Show:   func(client admin.Client) admin.Shower[admin.GameUser] { return client.GameUsers() },
		Store:  func(client admin.Client) admin.Storer[admin.GameUser] { return client.GameUsers() },
		Delete: func(client admin.Client) admin.Deleter { return client.GameUsers() },
	}
}

func transactionHistoriesDef() resourceDef[admin.TransactionHistory] {
	return resourceDef[admin.TransactionHistory]{
		Name:     "transactions",
		Aliases:  []string{"transaction-histories", "transactionhistories"},
		Singular: "transaction",
		Header:   []string{"ID", "Date", "Player", "Product", "Price", "Platform", "Voucher Used"},
		Row: func(item admin.TransactionHistory) []string {
			player := strconv.Itoa(item.GameUserID)
			if item.GameUser != nil {
				player = item.GameUser.Username
			}

			product := strconv.Itoa(item.ProductID)
			if item.Product != nil {
				product = item.Product.Name
			}

			return []string{
				strconv.Itoa(item.ID), formatTimestamp(item.TransactionDate), player, product,
				formatFloat(item.BuyPrice), item.Platform, formatOptionalInt(item.VoucherUsedID),
			}
		},
		Index: func(client admin.Client) admin.Indexer[admin.TransactionHistory] {
			return client.TransactionHistories()
		},
	}
}

func currencyHistoriesDef() resourceDef[admin.CurrencyHistory] {
	return resourceDef[admin.CurrencyHistory]{
		Name:     "currency-histories",
		Aliases:  []string{"currencyhistories"},
		Singular: "currency history",
		Header:   []string{"ID", "Player", "Amount", "Currency", "Description"},
		Row: func(item admin.CurrencyHistory) []string {
			player := strconv.Itoa(item.GameUserID)
			if item.GameUser != nil {
				player = item.GameUser.Username
			}

			return []string{
				strconv.Itoa(item.ID), player, strconv.Itoa(item.Amount), item.CurrencyType,
				truncate(item.Description, constants.DescriptionDisplayLength),
			}
		},
		Index: func(client admin.Client) admin.Indexer[admin.CurrencyHistory] {
			return client.CurrencyHistories()
		},
	}
}

var addressHeader = []string{"ID", "IP Address", "Country", "Created"}

func addressRow(item admin.Address) []string {
	return []string{strconv.Itoa(item.ID), item.IPAddress, item.Country, formatTimestamp(item.CreatedAt)}
}

// NewAddressesCommand creates the addresses group. The backend lists
// addresses without paging parameters and records one from the request
// itself, so neither subcommand takes input.
func NewAddressesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addresses",
		Aliases: []string{"address"},
		Short:   "Manage recorded addresses",
		Long:    "List the addresses the backend has recorded and record the caller's own address",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     constants.OperationList,
		Aliases: []string{"ls"},
		Short:   "List recorded addresses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				response, err := session.client.Addresses().Index(ctx)
				if err != nil {
					return fmt.Errorf("failed to list addresses: %w", err)
				}

				return renderOutput(cmd.OutOrStdout(), response, func(writer io.Writer) error {
					rows := make([][]string, 0, len(response.Data))
					for _, item := range response.Data {
						rows = append(rows, addressRow(item))
					}

					return renderTable(writer, addressHeader, rows)
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   constants.OperationCreate,
		Short: "Record the caller's address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				address, err := session.client.Addresses().Store(ctx)
				if err != nil {
					session.toasts.Danger("Error", failureMessage(err))

					return fmt.Errorf("failed to record address: %w", err)
				}

				session.toasts.Success("Success", "Address recorded")

				return renderOutput(cmd.OutOrStdout(), address, func(writer io.Writer) error {
					row := addressRow(*address)
					details := make([][]string, 0, len(addressHeader))

					for i, name := range addressHeader {
						details = append(details, []string{name, row[i]})
					}

					return renderDetails(writer, details)
				})
			})
		},
	})

	return cmd
}
