package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](writer io.Writer, data T) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](writer io.Writer, data T) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderOutput writes data in the selected output format, falling back to
// table for anything that is not json or yaml.
func renderOutput[T any](writer io.Writer, data T, table func(writer io.Writer) error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(writer, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(writer, data)
	default:
		return table(writer)
	}
}

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s (use table, json or yaml)", constants.ErrInvalidOutput, format)
	}
}

// renderTable writes rows under header.
func renderTable(writer io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(writer)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderDetails writes a two column property table.
func renderDetails(writer io.Writer, rows [][]string) error {
	return renderTable(writer, []string{"Property", "Value"}, rows)
}

func renderPageFooter(writer io.Writer, meta admin.PageMeta) {
	_, _ = fmt.Fprintf(writer, "Page %d of %d, showing %d-%d of %d\n",
		meta.CurrentPage, meta.LastPage, meta.From, meta.To, meta.Total)
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, value := range values {
		result[i] = value
	}

	return result
}

func formatBool(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}

func formatOptionalString(value *string) string {
	if value == nil || *value == "" {
		return ""
	}

	return truncate(*value, constants.DescriptionDisplayLength)
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}

	return strconv.Itoa(*value)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatTimestamp(value *admin.Timestamp) string {
	if value == nil || !value.IsSet() {
		return ""
	}

	if value.Raw != "" {
		return value.Raw
	}

	return value.Format("2006-01-02 15:04:05")
}

func formatProductName(product *admin.Product) string {
	if product == nil {
		return ""
	}

	return product.Name
}

func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	return string(runes[:length-3]) + "..."
}
