package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
)

var (
	// Global flags
	debugMode    bool
	configFile   string
	useAI        bool
	languageName string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd runs the commit wizard when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "commit-wizard",
	Short: "Interactive conventional commit wizard with AI suggestions",
	Long: `AI Commit Wizard walks you through a conventional commit message
for the staged changes, then commits and optionally pushes.

With --ai the staged diff is sent to an OpenAI-compatible model which
suggests the type, scope and subject for you to confirm or edit.

Examples:
  commit-wizard
  commit-wizard --ai
  commit-wizard --ai --language en
  commit-wizard -a -c ./team.commit-wizard.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode before any command runs
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runWizard,
}

// Execute runs the root command and returns the process exit code
// It is the only place where fatal errors are reported
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := NewInterruptHandler(cancel, os.Stderr)
	handler.Start()
	defer handler.Stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && handler.IsInterrupted() {
		err = errors.Join(context.Canceled, err)
	}
	if err != nil {
		reportError(os.Stderr, err)
	}
	return apperror.ExitCode(err)
}

// reportError prints err with its hints, and the stack trace in debug mode
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		color.New(color.FgYellow).Fprintln(w, "\n⚠️  Operation cancelled")
		return
	}

	color.New(color.FgRed).Fprintf(w, "❌ %s\n", err.Error())
	for _, hint := range apperror.Hints(err) {
		fmt.Fprintf(w, "   💡 %s\n", hint)
	}
	if log.IsDebugMode() {
		fmt.Fprintf(w, "\n[kind: %s]\n%+v\n", apperror.KindOf(err), err)
	}
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default: ./.commit-wizard.json, then ~/.commit-wizard.json)")

	rootCmd.Flags().BoolVarP(&useAI, "ai", "a", false, "Ask the AI model to suggest the commit message")
	rootCmd.Flags().StringVarP(&languageName, "language", "l", "zh", "Language of the AI suggested subject (en, zh, zh-tw, ja, ko)")
}
