package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ywarnier/oss-contrib/internal/ask"
	"github.com/ywarnier/oss-contrib/internal/config"
	"github.com/ywarnier/oss-contrib/internal/document"
	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
	"github.com/ywarnier/oss-contrib/internal/logging"
	"github.com/ywarnier/oss-contrib/internal/tui"
	"github.com/ywarnier/oss-contrib/internal/tui/styles"
	"github.com/ywarnier/oss-contrib/internal/wizard"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <contributions-yml>",
		Aliases: []string{"contributions:add"},
		Short:   "Add a contribution to a contributions file",
		Long: `Ask for the details of a new contribution and append it to the file.

The file must already exist and list at least one contribution type.
New projects and people can be created while answering. Multi-line
answers end with Ctrl+D on an empty line.

The file is only written once every question has been answered, so an
aborted session leaves it untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().Bool("plain", false, "Use line-oriented prompts")
	cmd.Flags().Bool("tui", false, "Use the terminal UI even when not attached to a terminal")
	cmd.MarkFlagsMutuallyExclusive("plain", "tui")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	path := args[0]
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Load before settings: a missing file must not leave a log file behind.
	doc, err := document.Load(path)
	if err != nil {
		printFailure(errOut, err)
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logging.CloseGlobal() }()

	ctx := logging.WithFile(cmd.Context(), path)
	logger := logging.Global()
	logger.WithContext(ctx).Debug("contributions loaded",
		"projects", len(doc.ProjectIDs()),
		"people", len(doc.PersonIDs()),
		"types", len(doc.Types()),
	)

	session := selectSession(cmd, promptMode(cmd, cfg))
	w := wizard.New(doc, session,
		wizard.WithLogger(logger),
		wizard.WithDefaultType(cfg.Prompt.DefaultType),
	)

	contribution, err := w.Run(ctx)
	if err != nil {
		logger.WithContext(ctx).Warn("session ended without a contribution", "error", err)
		return err
	}

	doc.Finalize(contribution)

	if err := ctx.Err(); err != nil {
		logger.WithContext(ctx).Warn("interrupted before writing", "error", err)
		return contriberrors.Aborted(err.Error())
	}

	opts := document.EncodeOptions{
		Indent:      cfg.Output.Indent,
		InlineLevel: cfg.Output.InlineLevel,
	}
	if err := doc.Save(path, opts); err != nil {
		logger.WithContext(ctx).Error("failed to write contributions", "error", err)
		printResult(out, styles.ErrorTextStyle, fmt.Sprintf(`The file "%s" could not be updated correctly`, path))
		printFailure(errOut, err)
		return err
	}

	logger.WithContext(ctx).Info("contributions written")
	printResult(out, styles.SuccessTextStyle, fmt.Sprintf(`The file "%s" was updated correctly`, path))
	return nil
}

// promptMode resolves the session kind from flags, then settings.
func promptMode(cmd *cobra.Command, cfg *config.Config) config.PromptMode {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return config.PromptModePlain
	}
	if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
		return config.PromptModeTUI
	}
	return cfg.Prompt.Mode
}

func selectSession(cmd *cobra.Command, mode config.PromptMode) ask.Session {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	interactive := isTerminal(in) && isTerminal(out)

	switch {
	case mode == config.PromptModeTUI,
		mode == config.PromptModeAuto && interactive:
		logging.Debug("using terminal session")
		return tui.NewSession(in, out)
	default:
		logging.Debug("using line session", "color", isTerminal(out))
		return ask.NewLineSession(in, out, isTerminal(out), ask.WithTerminalInput(isTerminal(in)))
	}
}

// printResult writes the final status line, styled only on a terminal.
func printResult(w io.Writer, style lipgloss.Style, msg string) {
	if isTerminal(w) {
		msg = style.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

// printFailure writes the details and advice attached to err, if any.
func printFailure(w io.Writer, err error) {
	var ce *contriberrors.ContribError
	if !errors.As(err, &ce) || ce.Suggestion == "" {
		return
	}
	msg := ce.Format()
	if isTerminal(w) {
		msg = styles.MutedTextStyle.Render(msg)
	}
	fmt.Fprint(w, msg)
}
