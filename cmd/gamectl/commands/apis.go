package commands

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/gameclient"
)

// apiInfo is the listing form of a configured API.
type apiInfo struct {
	Name              string `json:"name"                yaml:"name"`
	Endpoint          string `json:"endpoint"            yaml:"endpoint"`
	User              string `json:"user,omitempty"      yaml:"user,omitempty"`
	LoggedIn          bool   `json:"logged_in"           yaml:"logged_in"`
	SkipSSLValidation bool   `json:"skip_ssl_validation" yaml:"skip_ssl_validation"`
	Current           bool   `json:"current"             yaml:"current"`
}

// NewAPIsCommand creates the apis command group.
func NewAPIsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apis",
		Aliases: []string{"api"},
		Short:   "Manage admin API endpoints",
		Long:    "Add, list, remove and switch between game backend admin APIs",
	}

	cmd.AddCommand(newAPIsAddCommand())
	cmd.AddCommand(newAPIsListCommand())
	cmd.AddCommand(newAPIsRemoveCommand())
	cmd.AddCommand(newAPIsUseCommand())

	return cmd
}

func newAPIsAddCommand() *cobra.Command {
	var skipSSLValidation bool

	cmd := &cobra.Command{
		Use:   "add NAME ENDPOINT",
		Short: "Add an admin API endpoint",
		Long:  "Add a game backend admin API to the configuration. The first API added becomes the current one.",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])

			endpoint, err := normalizeEndpoint(args[1])
			if err != nil {
				return err
			}

			if skipSSLValidation && !constants.DevModeEnabled() {
				return constants.ErrSSLOnlyInDev
			}

			config := loadConfig()

			if _, exists := config.APIs[name]; exists {
				return fmt.Errorf("%w: '%s'", constants.ErrAPIAlreadyExists, name)
			}

			config.APIs[name] = &APIConfig{
				Endpoint:          endpoint,
				SkipSSLValidation: skipSSLValidation,
			}

			out := cmd.OutOrStdout()

			if config.CurrentAPI == "" {
				config.CurrentAPI = name
				_, _ = fmt.Fprintf(out, "API '%s' (%s) added and set as current target\n", name, endpoint)
			} else {
				_, _ = fmt.Fprintf(out, "API '%s' (%s) added\n", name, endpoint)
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSSLValidation, "skip-ssl-validation", false, "skip SSL certificate validation (development only)")

	return cmd
}

func newAPIsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List admin API endpoints",
		Long:    "Display all configured admin APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if len(config.APIs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No APIs configured. Use 'gamectl apis add' to add one.")

				return nil
			}

			apis := make([]apiInfo, 0, len(config.APIs))
			for _, name := range sortedAPINames(config) {
				apiConfig := config.APIs[name]
				apis = append(apis, apiInfo{
					Name:              name,
					Endpoint:          apiConfig.Endpoint,
					User:              apiConfig.User.Email,
					LoggedIn:          apiConfig.LoggedIn,
					SkipSSLValidation: apiConfig.SkipSSLValidation,
					Current:           name == config.CurrentAPI,
				})
			}

			return renderOutput(cmd.OutOrStdout(), apis, func(writer io.Writer) error {
				return displayAPIsTable(writer, config)
			})
		},
	}
}

func displayAPIsTable(writer io.Writer, config *Config) error {
	rows := make([][]string, 0, len(config.APIs))

	for _, name := range sortedAPINames(config) {
		apiConfig := config.APIs[name]
		rows = append(rows, []string{
			formatCurrentIndicator(name == config.CurrentAPI),
			name,
			apiConfig.Endpoint,
			formatConfigValue(apiConfig.User.Email),
			formatBool(apiConfig.LoggedIn),
			formatBool(apiConfig.SkipSSLValidation),
		})
	}

	return renderTable(writer, []string{"Current", "Name", "Endpoint", "User", "Logged In", "Skip SSL"}, rows)
}

func newAPIsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove an admin API endpoint",
		Long:    "Remove an admin API and its stored session from the configuration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			config := loadConfig()

			if _, exists := config.APIs[name]; !exists {
				return fmt.Errorf("%w: '%s'", constants.ErrAPIConfigNotFound, name)
			}

			delete(config.APIs, name)

			out := cmd.OutOrStdout()

			switch {
			case config.CurrentAPI != name:
				_, _ = fmt.Fprintf(out, "API '%s' removed\n", name)
			case len(config.APIs) > 0:
				config.CurrentAPI = sortedAPINames(config)[0]
				_, _ = fmt.Fprintf(out, "API '%s' removed. Current API switched to '%s'\n", name, config.CurrentAPI)
			default:
				config.CurrentAPI = ""
				_, _ = fmt.Fprintf(out, "API '%s' removed. No APIs remaining.\n", name)
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			return nil
		},
	}
}

func newAPIsUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "use NAME",
		Aliases: []string{"target"},
		Short:   "Switch the current admin API",
		Long:    "Set an admin API as the current target for every other command",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			config := loadConfig()

			if _, exists := config.APIs[name]; !exists {
				return fmt.Errorf("%w: '%s', use 'gamectl apis list' to see available APIs", constants.ErrAPIConfigNotFound, name)
			}

			config.CurrentAPI = name

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API '%s' is now the current target\n", name)

			return nil
		},
	}
}

// normalizeEndpoint validates an endpoint and reduces it to scheme, host and
// path without a trailing slash.
func normalizeEndpoint(endpoint string) (string, error) {
	normalized := gameclient.NormalizeEndpoint(endpoint)

	parsedURL, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrInvalidEndpoint, err)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("%w: no host in '%s'", constants.ErrInvalidEndpoint, endpoint)
	}

	return fmt.Sprintf("%s://%s%s", parsedURL.Scheme, parsedURL.Host, strings.TrimSuffix(parsedURL.Path, "/")), nil
}
