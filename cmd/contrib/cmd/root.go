// Package cmd provides the CLI commands for contrib.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ywarnier/oss-contrib/internal/config"
	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
	"github.com/ywarnier/oss-contrib/internal/logging"
	"github.com/ywarnier/oss-contrib/internal/version"
)

// Version information, set from main before the root command runs.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildVersion returns the version string shown by --version.
func BuildVersion() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	shortCommit := Commit
	if len(Commit) > 7 {
		shortCommit = Commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", Version, shortCommit, Date)
}

// NewRootCmd creates the root command with all subcommands attached.
// Each call returns a fresh tree so tests do not share flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contrib",
		Short: "Record open source contributions in a YAML file",
		Long: `Contrib keeps a YAML record of open source contributions.

The add command asks a short series of questions about a contribution,
appends it to the file, registers any new project or person on the way
and rewrites the file with people and contributions in canonical order.

Examples:
  contrib add contributions.yml          # Ask in the terminal UI when interactive
  contrib add contributions.yml --plain  # Line-oriented prompts, e.g. for piped input`,
		Version:       BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a contrib settings file (default: ./"+config.DefaultConfigPath+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging to stderr")
	root.PersistentFlags().String("log-file", "", "Append structured logs to this file")

	root.AddCommand(newAddCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadSettings reads the settings file selected by --config and starts the
// global logger. The caller closes the logger with logging.CloseGlobal.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, contriberrors.Wrap(err, contriberrors.ErrConfig, "failed to load settings")
	}

	logConfig := cfg.LoggingConfig()
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		logConfig.File = logFile
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logConfig.Level = logging.LevelDebug
		logConfig.Console = true
		logConfig.Stderr = cmd.ErrOrStderr()
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		return nil, contriberrors.Wrap(err, contriberrors.ErrConfig, "failed to start logging")
	}

	logging.Debug("settings loaded",
		"build", version.NewInfo(Version, Commit, Date).String(),
		"config", path,
		"prompt_mode", string(cfg.Prompt.Mode),
		"indent", cfg.Output.Indent,
		"inline_level", cfg.Output.InlineLevel,
	)
	return cfg, nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
