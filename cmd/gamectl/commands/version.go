package commands

import (
	"io"

	"github.com/spf13/cobra"
)

// versionInfo is the structured form of the version output.
type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about gamectl",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return renderOutput(cmd.OutOrStdout(), info, func(writer io.Writer) error {
				return renderDetails(writer, [][]string{
					{"Version", info.Version},
					{"Commit", info.Commit},
					{"Built", info.Built},
				})
			})
		},
	}
}
