package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanfang0054/ai-commit-wizard/internal/agent"
	"github.com/evanfang0054/ai-commit-wizard/internal/commit"
	"github.com/evanfang0054/ai-commit-wizard/internal/config"
	"github.com/evanfang0054/ai-commit-wizard/internal/git"
	"github.com/evanfang0054/ai-commit-wizard/internal/llm"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
	"github.com/evanfang0054/ai-commit-wizard/internal/wizard"
	"github.com/evanfang0054/ai-commit-wizard/pkg/lang"
)

// wizardSettings are the resolved flags of one run
type wizardSettings struct {
	WorkDir    string
	UseAI      bool
	ConfigPath string
	Language   lang.Language
	Version    string
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	settings := wizardSettings{
		WorkDir:    cwd,
		UseAI:      useAI,
		ConfigPath: configFile,
		Language:   lang.ParseLanguage(languageName),
		Version:    version,
	}
	log.Debug("Mode: ai=%v, language=%s, workDir=%s", settings.UseAI, settings.Language, settings.WorkDir)

	_ = ui.ShowBanner(out, settings.Version)

	w, err := buildWizard(settings, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	if err := w.Run(ctx); err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Fprintln(out, "\n🎉 All done!")
	return nil
}

// buildWizard wires the git, prompt and model components for settings
func buildWizard(settings wizardSettings, in io.Reader, out io.Writer) (*wizard.Wizard, error) {
	gitExec := git.NewExecutor(settings.WorkDir)
	prompter := ui.NewPrompter(in, out)

	return wizard.New(wizard.Options{
		UseAI:       settings.UseAI,
		Transaction: git.NewTransaction(gitExec),
		Changes:     agent.NewChangeCollector(gitExec),
		Answers:     commit.NewCollector(prompter, out),
		Progress:    ui.NewProgress(out),
		LoadConfig: func() (*config.OpenAIConfig, error) {
			return config.Load(settings.ConfigPath)
		},
		NewSuggester: func(cfg *config.OpenAIConfig) (wizard.Suggester, error) {
			engine, err := agent.NewSuggestionEngine(agent.SuggestionEngineOptions{
				LLMProvider: llm.NewOpenAIProvider(*cfg),
				Language:    settings.Language,
				Printer:     ui.NewStreamPrinter(out, ui.WithVerbose(log.IsDebugMode())),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create suggestion engine: %w", err)
			}
			return engine, nil
		},
	})
}
