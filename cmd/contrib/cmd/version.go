package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ywarnier/oss-contrib/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for contrib.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  contrib version         # Show detailed version info
  contrib version --json  # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.NewInfo(Version, Commit, Date)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := info.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return nil
}
