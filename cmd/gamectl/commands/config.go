package commands

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// Config represents the CLI configuration.
type Config struct {
	APIs       map[string]*APIConfig `json:"apis,omitempty"        yaml:"apis,omitempty"`
	CurrentAPI string                `json:"current_api,omitempty" yaml:"current_api,omitempty"`

	Output  string `json:"output"             yaml:"output"`
	NoColor bool   `json:"no_color"           yaml:"no_color"`
	NATSURL string `json:"nats_url,omitempty" yaml:"nats_url,omitempty"`
}

// APIConfig is one configured backend together with the state kept between runs.
type APIConfig struct {
	Endpoint          string                      `json:"endpoint"            yaml:"endpoint"`
	SkipSSLValidation bool                        `json:"skip_ssl_validation" yaml:"skip_ssl_validation"`
	LoggedIn          bool                        `json:"logged_in"           yaml:"logged_in"`
	User              admin.UserProfile           `json:"user"                yaml:"user"`
	Cookies           []StoredCookie              `json:"cookies,omitempty"   yaml:"cookies,omitempty"`
	Cursors           map[string]*admin.PageState `json:"cursors,omitempty"   yaml:"cursors,omitempty"`
}

// StoredCookie is a session cookie persisted for an API.
type StoredCookie struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change global gamectl settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the global settings and the configured APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return StandardJSONRenderer(cmd.OutOrStdout(), redactConfig(config))
			case constants.FormatYAML:
				return StandardYAMLRenderer(cmd.OutOrStdout(), redactConfig(config))
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a global configuration value. Keys: output, no_color, nats_url",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setGlobalConfig(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

			return nil
		},
	}
}

func setGlobalConfig(config *Config, key, value string) error {
	switch key {
	case "output":
		err := validateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case "no_color", "no-color":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.NoColor = parsed
	case "nats_url", "nats-url":
		config.NATSURL = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the stored configuration. Flags and environment variables
// are not applied: callers read effective settings from viper, and anything
// written back with saveConfigStruct stays what the file held.
func loadConfig() *Config {
	config := &Config{APIs: make(map[string]*APIConfig)}

	configFile, err := configFilePath()
	if err != nil {
		return config
	}

	stored := viper.New()
	stored.SetConfigFile(configFile)
	stored.SetConfigType("yaml")

	err = stored.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v\n", err)
		}

		return config
	}

	config.CurrentAPI = stored.GetString("current_api")
	config.Output = stored.GetString("output")
	config.NoColor = stored.GetBool("no_color")
	config.NATSURL = stored.GetString("nats_url")

	err = stored.UnmarshalKey("apis", &config.APIs, func(decoderConfig *mapstructure.DecoderConfig) {
		decoderConfig.TagName = "yaml"
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring malformed apis section: %v\n", err)
	}

	for name, apiConfig := range config.APIs {
		if apiConfig == nil {
			delete(config.APIs, name)
		}
	}

	return config
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// saveConfigStruct writes config to the config file.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// extractDomainFromEndpoint extracts the host portion of an API endpoint.
func extractDomainFromEndpoint(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err == nil && parsed.Hostname() != "" {
		return parsed.Hostname()
	}

	domain := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")

	if idx := strings.IndexAny(domain, "/:"); idx != -1 {
		domain = domain[:idx]
	}

	return domain
}

// resolveAPIName picks the API a command runs against: the --api flag when
// set, otherwise the current API.
func resolveAPIName(config *Config, apiFlag string) (string, error) {
	if len(config.APIs) == 0 {
		return "", constants.ErrNoAPIsConfigured
	}

	if apiFlag != "" {
		if _, exists := config.APIs[apiFlag]; exists {
			return apiFlag, nil
		}

		for name, apiConfig := range config.APIs {
			if apiConfig.Endpoint == apiFlag || extractDomainFromEndpoint(apiConfig.Endpoint) == apiFlag {
				return name, nil
			}
		}

		return "", fmt.Errorf("%w: '%s', use 'gamectl apis list' to see available APIs", constants.ErrAPIConfigNotFound, apiFlag)
	}

	if config.CurrentAPI != "" {
		if _, exists := config.APIs[config.CurrentAPI]; exists {
			return config.CurrentAPI, nil
		}

		return "", fmt.Errorf("%w: current API '%s'", constants.ErrAPIConfigNotFound, config.CurrentAPI)
	}

	names := sortedAPINames(config)

	return names[0], nil
}

func sortedAPINames(config *Config) []string {
	names := make([]string, 0, len(config.APIs))
	for name := range config.APIs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// redactConfig returns a copy of config with session cookies masked.
func redactConfig(config *Config) *Config {
	redacted := *config
	redacted.APIs = make(map[string]*APIConfig, len(config.APIs))

	for name, apiConfig := range config.APIs {
		apiCopy := *apiConfig
		apiCopy.Cookies = make([]StoredCookie, 0, len(apiConfig.Cookies))

		for _, cookie := range apiConfig.Cookies {
			apiCopy.Cookies = append(apiCopy.Cookies, StoredCookie{Name: cookie.Name, Value: constants.MaskedSecret})
		}

		redacted.APIs[name] = &apiCopy
	}

	return &redacted
}

func displayConfigTable(writer io.Writer, config *Config) error {
	table := tablewriter.NewWriter(writer)
	table.Header("Setting", "Value")

	_ = table.Append("Current API", formatConfigValue(config.CurrentAPI))
	_ = table.Append("Output", formatConfigValue(config.Output))
	_ = table.Append("No color", strconv.FormatBool(config.NoColor))
	_ = table.Append("NATS URL", formatConfigValue(config.NATSURL))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(config.APIs) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(writer)

	return displayAPIsTable(writer, config)
}

func formatConfigValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatCurrentIndicator(isCurrent bool) string {
	if isCurrent {
		return constants.CheckMarkSymbol
	}

	return ""
}
