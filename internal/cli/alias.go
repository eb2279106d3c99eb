package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/git"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
)

const (
	aliasKey   = "alias.cw"
	aliasValue = "!commit-wizard"
)

// globalConfig reads and writes keys of the user's global git config
type globalConfig interface {
	GetGlobalConfig(ctx context.Context, key string) (string, error)
	SetGlobalConfig(ctx context.Context, key, value string) error
}

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Register the 'git cw' alias",
	Long: `Register a global git alias so the wizard can be started with 'git cw'.

This runs: git config --global alias.cw "!commit-wizard"
An existing alias.cw with another value is only replaced after confirmation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		out := cmd.OutOrStdout()
		installed, err := installAlias(cmd.Context(), git.NewExecutor(cwd), cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if !installed {
			fmt.Fprintln(out, "Alias left unchanged.")
			return nil
		}

		fmt.Fprintln(out, "✅ Git alias installed")
		fmt.Fprintln(out, "   Run 'git cw' to start the wizard, or 'git cw --ai' for AI suggestions")
		return nil
	},
}

// installAlias sets alias.cw and reports whether it was written
func installAlias(ctx context.Context, cfg globalConfig, in io.Reader, out io.Writer) (bool, error) {
	current, err := cfg.GetGlobalConfig(ctx, aliasKey)
	if err != nil {
		return false, apperror.Git(err, "failed to read git alias %s", aliasKey)
	}

	if current != "" && current != aliasValue {
		overwrite, err := ui.Confirm(fmt.Sprintf("%s is already set to %q. Overwrite it?", aliasKey, current), in, out)
		if err != nil {
			return false, err
		}
		if !overwrite {
			return false, nil
		}
	}

	if err := cfg.SetGlobalConfig(ctx, aliasKey, aliasValue); err != nil {
		return false, apperror.Git(err, "failed to set git alias %s", aliasKey)
	}
	return true, nil
}

func init() {
	rootCmd.AddCommand(aliasCmd)
}
