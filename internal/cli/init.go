package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/config"
)

const defaultConfigTemplate = `{
  "openai": {
    "apiKey": "${OPENAI_API_KEY}",
    "baseURL": "https://api.openai.com/v1",
    "model": "gpt-4o-mini",
    "temperature": 0.7,
    "maxTokens": 150,
    "exclude": [
      "node_modules",
      "dist",
      "package-lock.json",
      "pnpm-lock.yaml",
      "yarn.lock",
      "go.sum"
    ]
  }
}
`

var (
	initForce  bool
	initGlobal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file",
	Long: `Create a template configuration file (.commit-wizard.json).

The file is written to the current directory, or to your home directory
with --global. Edit it to set the API key, endpoint and model used by --ai.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := initTargetDir(initGlobal)
		if err != nil {
			return err
		}

		configPath, err := writeConfigTemplate(dir, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration file created: %s\n", configPath)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit the config file and set your API key, base URL and model")
		fmt.Fprintln(out, "  2. Keep the key in an environment variable, e.g. \"apiKey\": \"${OPENAI_API_KEY}\"")
		fmt.Fprintln(out, "  3. Run 'commit-wizard --ai' to get a suggested commit message")

		return nil
	},
}

func initTargetDir(global bool) (string, error) {
	if global {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return homeDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// writeConfigTemplate writes the template into dir and returns its path
func writeConfigTemplate(dir string, force bool) (string, error) {
	configPath := filepath.Join(dir, config.FileName)

	// Check if file exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return "", apperror.Config(nil, "use --force to overwrite", "config file already exists: %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configPath, nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Write the config file to the home directory")
	rootCmd.AddCommand(initCmd)
}
