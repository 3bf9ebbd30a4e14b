// Package commands implements the gamectl command tree.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
)

// NewRootCommand creates the gamectl root command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamectl",
		Short: "Game backend admin CLI",
		Long: `A command-line console for the game backend admin API.

gamectl manages the game catalogue (achievements, items, skins, vouchers,
terrains, missions), accounts, the store and the purchase histories.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.gamectl/config.yml)")
	flags.StringP("api", "a", "", "API name or endpoint to use instead of the current API")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("no-color", false, "disable colored output")
	flags.Bool("skip-ssl-validation", false, "skip SSL certificate validation (development only)")
	flags.String("nats-url", "", "NATS server toasts are published to")
	flags.Int("retries", 0, "retries of 429 and 5xx responses")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("api", flags.Lookup("api"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = viper.BindPFlag("skip_ssl_validation", flags.Lookup("skip-ssl-validation"))
	_ = viper.BindPFlag("nats_url", flags.Lookup("nats-url"))
	_ = viper.BindPFlag("retries", flags.Lookup("retries"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewAPIsCommand())
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewLogoutCommand())
	rootCmd.AddCommand(NewWhoAmICommand())

	for _, resourceCmd := range NewResourceCommands() {
		rootCmd.AddCommand(resourceCmd)
	}

	return rootCmd
}

func initConfig() error {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.SetConfigFile(filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName))
	}

	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	if viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
