package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// resourceDef describes one admin resource and the operations its backend
// supports. A nil operation leaves the matching subcommand out.
type resourceDef[T any] struct {
	Name     string
	Aliases  []string
	Singular string
	Header   []string
	Row      func(item T) []string

	Index   func(client admin.Client) admin.Indexer[T]
	Show    func(client admin.Client) admin.Shower[T]
	Store   func(client admin.Client) admin.Storer[T]
	Update  func(client admin.Client) admin.Updater[T]
	Delete  func(client admin.Client) admin.Deleter
	Purge   func(client admin.Client) admin.PermanentDeleter
	Restore func(client admin.Client) admin.Restorer
}

// listOptions are the flags of a list subcommand.
type listOptions struct {
	page    int
	perPage int
	next    bool
	prev    bool
	reset   bool
	query   []string
}

// payloadOptions are the flags of create and update subcommands.
type payloadOptions struct {
	file string
	sets []string
}

// command builds the command group for the resource.
func (def resourceDef[T]) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     def.Name,
		Aliases: def.Aliases,
		Short:   "Manage " + def.Name,
		Long:    fmt.Sprintf("List and manage %s on the current admin API", def.Name),
	}

	if def.Index != nil {
		cmd.AddCommand(def.listCommand())
	}

	if def.Show != nil {
		cmd.AddCommand(def.getCommand())
	}

	if def.Store != nil {
		cmd.AddCommand(def.createCommand())
	}

	if def.Update != nil {
		cmd.AddCommand(def.updateCommand())
	}

	if def.Delete != nil {
		cmd.AddCommand(def.batchCommand(constants.OperationDelete, "Delete", "deleted", admin.BatchDelete))
	}

	if def.Restore != nil {
		cmd.AddCommand(def.batchCommand(constants.OperationRestore, "Restore", "restored", admin.BatchRestore))
	}

	if def.Purge != nil {
		cmd.AddCommand(def.batchCommand(constants.OperationPurge, "Permanently delete", "permanently deleted", admin.BatchPermanentDelete))
	}

	return cmd
}

func (def resourceDef[T]) listCommand() *cobra.Command {
	options := &listOptions{}

	cmd := &cobra.Command{
		Use:     constants.OperationList,
		Aliases: []string{"ls"},
		Short:   "List " + def.Name,
		Long: fmt.Sprintf(`List %s one page at a time.

The page cursor is remembered between runs: --next and --prev move from the
last page shown, --page jumps, --per-page changes the page size and goes back
to the first page.`, def.Name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				cursor, err := def.moveCursor(cmd, session, options)
				if err != nil {
					return err
				}

				userQuery, err := buildQuery(options.query)
				if err != nil {
					return err
				}

				response, err := def.Index(session.client).Index(ctx, cursor.Query().Merge(userQuery))
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", def.Name, err)
				}

				cursor.UpdateFromMeta(response.Meta)

				err = session.persister.SaveCursor(def.Name, cursor.State())
				if err != nil {
					session.warn("failed to save page cursor", err)
				}

				return renderOutput(cmd.OutOrStdout(), response, func(writer io.Writer) error {
					return def.renderList(writer, response)
				})
			})
		},
	}

	cmd.Flags().IntVar(&options.page, "page", admin.DefaultPage, "page to show")
	cmd.Flags().IntVar(&options.perPage, "per-page", admin.DefaultPerPage, "rows per page")
	cmd.Flags().BoolVar(&options.next, "next", false, "show the page after the last one shown")
	cmd.Flags().BoolVar(&options.prev, "prev", false, "show the page before the last one shown")
	cmd.Flags().BoolVar(&options.reset, "reset", false, "forget the remembered page cursor")
	cmd.Flags().StringArrayVarP(&options.query, "query", "q", nil, "extra list parameter as key=value (repeatable)")

	return cmd
}

// moveCursor restores the remembered cursor and applies the pager flags.
func (def resourceDef[T]) moveCursor(cmd *cobra.Command, session *sessionContext, options *listOptions) (*admin.PaginationState, error) {
	flags := cmd.Flags()

	moves := 0

	for _, name := range []string{"page", "next", "prev"} {
		if flags.Changed(name) {
			moves++
		}
	}

	if moves > 1 {
		return nil, constants.ErrConflictingPagerOp
	}

	if flags.Changed("per-page") && (options.next || options.prev) {
		return nil, constants.ErrPageSizeWithStep
	}

	cursor := admin.NewPaginationState()

	if stored := session.persister.LoadCursor(def.Name); stored != nil && !options.reset {
		if stored.PerPage > 0 {
			cursor.SetPerPage(stored.PerPage)
		}

		cursor.UpdateFromMeta(admin.PageMeta{
			CurrentPage: stored.CurrentPage,
			LastPage:    stored.LastPage,
			From:        stored.From,
			To:          stored.To,
			Total:       stored.Total,
		})
	}

	if flags.Changed("per-page") {
		if options.perPage < 1 || options.perPage > constants.MaxPageSize {
			return nil, fmt.Errorf("%w: %d (use 1-%d)", constants.ErrInvalidPageSize, options.perPage, constants.MaxPageSize)
		}

		cursor.SetPerPage(options.perPage)
	}

	switch {
	case options.next:
		if !cursor.HasNext() {
			return nil, constants.ErrNoNextPage
		}

		cursor.NextPage()
	case options.prev:
		if !cursor.HasPrev() {
			return nil, constants.ErrNoPreviousPage
		}

		cursor.PrevPage()
	case flags.Changed("page"):
		if options.page < 1 {
			return nil, fmt.Errorf("%w: %d", constants.ErrInvalidPage, options.page)
		}

		cursor.GoToPage(options.page)
	}

	if cursor.CurrentPage() < 1 {
		cursor.GoToPage(admin.DefaultPage)
	}

	return cursor, nil
}

func (def resourceDef[T]) renderList(writer io.Writer, response *admin.ListResponse[T]) error {
	if len(response.Data) == 0 {
		_, _ = fmt.Fprintf(writer, "No %s found\n", def.Name)

		return nil
	}

	rows := make([][]string, 0, len(response.Data))
	for _, item := range response.Data {
		rows = append(rows, def.Row(item))
	}

	err := renderTable(writer, def.Header, rows)
	if err != nil {
		return err
	}

	renderPageFooter(writer, response.Meta)

	return nil
}

func (def resourceDef[T]) renderItem(writer io.Writer, item *T) error {
	return renderOutput(writer, item, func(writer io.Writer) error {
		row := def.Row(*item)
		details := make([][]string, 0, len(def.Header))

		for i, name := range def.Header {
			if i < len(row) {
				details = append(details, []string{name, row[i]})
			}
		}

		return renderDetails(writer, details)
	})
}

func (def resourceDef[T]) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:     constants.OperationGet + " ID",
		Aliases: []string{"show"},
		Short:   fmt.Sprintf("Show a %s", def.Singular),
		Long:    fmt.Sprintf("Display a single %s by id", def.Singular),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				item, err := def.Show(session.client).Show(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to get %s %d: %w", def.Singular, id, err)
				}

				return def.renderItem(cmd.OutOrStdout(), item)
			})
		},
	}
}

func (def resourceDef[T]) createCommand() *cobra.Command {
	options := &payloadOptions{}

	cmd := &cobra.Command{
		Use:   constants.OperationCreate,
		Short: fmt.Sprintf("Create a %s", def.Singular),
		Long: fmt.Sprintf(`Create a %s from a YAML or JSON file, --set flags, or both.

--set values override the file. Dotted keys set nested fields, for example
--set product.price=9.99.`, def.Singular),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildPayload(options.file, options.sets)
			if err != nil {
				return err
			}

			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				item, err := def.Store(session.client).Store(ctx, payload)
				if err != nil {
					session.toasts.Danger("Error", failureMessage(err))

					return fmt.Errorf("failed to create %s: %w", def.Singular, err)
				}

				session.toasts.Success("Success", capitalize(def.Singular)+" created")

				return def.renderItem(cmd.OutOrStdout(), item)
			})
		},
	}

	addPayloadFlags(cmd, options)

	return cmd
}

func (def resourceDef[T]) updateCommand() *cobra.Command {
	options := &payloadOptions{}

	cmd := &cobra.Command{
		Use:   constants.OperationUpdate + " ID",
		Short: fmt.Sprintf("Update a %s", def.Singular),
		Long:  fmt.Sprintf("Replace a %s with the fields from a YAML or JSON file and --set flags", def.Singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			payload, err := buildPayload(options.file, options.sets)
			if err != nil {
				return err
			}

			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				item, err := def.Update(session.client).Update(ctx, id, payload)
				if err != nil {
					session.toasts.Danger("Error", failureMessage(err))

					return fmt.Errorf("failed to update %s %d: %w", def.Singular, id, err)
				}

				session.toasts.Success("Success", capitalize(def.Singular)+" updated")

				return def.renderItem(cmd.OutOrStdout(), item)
			})
		},
	}

	addPayloadFlags(cmd, options)

	return cmd
}

func addPayloadFlags(cmd *cobra.Command, options *payloadOptions) {
	cmd.Flags().StringVarP(&options.file, "file", "f", "", "YAML or JSON file with the fields")
	cmd.Flags().StringArrayVar(&options.sets, "set", nil, "field as key=value (repeatable)")
}

// batchCommand builds delete, restore and purge. Several ids run
// concurrently and each gets its own toast.
func (def resourceDef[T]) batchCommand(use, verb, pastTense string, operation admin.BatchOperationType) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID...",
		Short: fmt.Sprintf("%s %s", verb, def.Name),
		Long:  fmt.Sprintf("%s one or more %s by id", verb, def.Name),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			return withSession(cmd, true, func(ctx context.Context, session *sessionContext) error {
				builder := admin.NewBatchBuilder()

				for _, id := range ids {
					switch operation {
					case admin.BatchDelete:
						builder.AddDelete(def.Delete(session.client), id)
					case admin.BatchRestore:
						builder.AddRestore(def.Restore(session.client), id)
					case admin.BatchPermanentDelete:
						builder.AddPermanentDelete(def.Purge(session.client), id)
					}
				}

				results, err := admin.NewBatchExecutor(constants.DefaultConcurrencyLimit).Execute(ctx, builder.Build())

				for _, result := range results {
					if result.Success {
						session.toasts.Success("Success", fmt.Sprintf("%s %d %s", capitalize(def.Singular), result.ResourceID, pastTense))
					} else {
						session.toasts.Danger("Error", fmt.Sprintf("%s %d: %s", capitalize(def.Singular), result.ResourceID, failureMessage(result.Error)))
					}
				}

				if err != nil {
					return batchError(results, err)
				}

				return nil
			})
		},
	}
}

// batchError keeps an unauthorized failure visible so the session hint
// applies.
func batchError(results []admin.BatchResult, err error) error {
	for _, result := range results {
		if result.Error != nil && admin.IsUnauthorized(result.Error) {
			return errors.Join(err, result.Error)
		}
	}

	return err
}

// failureMessage is the text shown in an error toast.
func failureMessage(err error) string {
	var apiErr *admin.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return err.Error()
}

func capitalize(value string) string {
	if value == "" {
		return value
	}

	return strings.ToUpper(value[:1]) + value[1:]
}
