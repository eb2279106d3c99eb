package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
)

// FileName is the config file looked up in the working and home directories
const FileName = ".commit-wizard.json"

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fileConfig is the root of the config file
type fileConfig struct {
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

// OpenAIConfig holds the completion service settings
type OpenAIConfig struct {
	APIKey      string   `json:"apiKey" mapstructure:"apiKey" validate:"required"`
	BaseURL     string   `json:"baseURL" mapstructure:"baseURL" validate:"required"`
	Model       string   `json:"model" mapstructure:"model" validate:"required"`
	Temperature float64  `json:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int      `json:"maxTokens" mapstructure:"maxTokens" validate:"gte=1"`
	Exclude     []string `json:"exclude" mapstructure:"exclude"`
}

// knownKeys are the accepted keys under "openai", lowercased as viper stores them
var knownKeys = map[string]bool{
	"apikey":      true,
	"baseurl":     true,
	"model":       true,
	"temperature": true,
	"maxtokens":   true,
	"exclude":     true,
}

// Validate checks required fields and value ranges
func (c *OpenAIConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var missing, invalid []string
	for _, e := range validationErrs {
		if e.Tag() == "required" {
			missing = append(missing, e.Field())
			continue
		}
		invalid = append(invalid, formatValidationError(e))
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid values: %s", strings.Join(invalid, "; ")))
	}
	return fmt.Errorf("openai config %s", strings.Join(parts, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed %s", e.Field(), e.Tag())
	}
}

// Redacted returns a copy safe to print, with the API key masked
func (c OpenAIConfig) Redacted() OpenAIConfig {
	if len(c.APIKey) > 8 {
		c.APIKey = c.APIKey[:3] + "..." + c.APIKey[len(c.APIKey)-4:]
	} else if c.APIKey != "" {
		c.APIKey = "***"
	}
	return c
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	// Handle $VAR format
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// LoadFromFile reads, validates and returns the openai section of a config file
func LoadFromFile(path string) (*OpenAIConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("openai.temperature", DefaultTemperature)
	v.SetDefault("openai.maxTokens", DefaultMaxTokens)
	v.SetDefault("openai.exclude", []string{})

	if err := v.ReadInConfig(); err != nil {
		return nil, apperror.Config(err, "make sure the file is valid JSON", "failed to read config file %s", path)
	}

	if !v.InConfig("openai") {
		return nil, apperror.Config(nil, `add an "openai" object with apiKey, baseURL and model`,
			"config file %s has no openai section", path)
	}

	warnUnknownKeys(v, path)

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperror.Config(err, "check the value types in the config file", "failed to parse config file %s", path)
	}

	openai := cfg.OpenAI
	openai.APIKey = expandEnv(openai.APIKey)
	if openai.Exclude == nil {
		openai.Exclude = []string{}
	}

	if err := openai.Validate(); err != nil {
		return nil, apperror.Config(err, fmt.Sprintf("edit %s and fill in the listed fields", path), "invalid config file")
	}

	return &openai, nil
}

// warnUnknownKeys reports keys the closed config structure does not know
func warnUnknownKeys(v *viper.Viper, path string) {
	var unknown []string
	for _, key := range v.AllKeys() {
		section, field, found := strings.Cut(key, ".")
		if section != "openai" {
			unknown = append(unknown, key)
			continue
		}
		if !found {
			continue
		}
		field, _, _ = strings.Cut(field, ".")
		if !knownKeys[field] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		log.Warn("ignoring unknown config key %q in %s", key, path)
	}
}

// DefaultSearchDirs returns the directories searched for FileName
// Priority: current directory > home directory
func DefaultSearchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Locate resolves the config file path
// An explicit path must exist; otherwise the first dir containing FileName wins
func Locate(customPath string, dirs []string) (string, error) {
	if customPath != "" {
		absPath, err := filepath.Abs(customPath)
		if err != nil {
			return "", apperror.Config(err, "", "invalid config path %s", customPath)
		}
		if _, err := os.Stat(absPath); err != nil {
			return "", apperror.Config(err, "check the --config path", "config file not found: %s", customPath)
		}
		return absPath, nil
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", apperror.Config(nil,
		fmt.Sprintf("create one with 'commit-wizard init' or place %s in the project or home directory", FileName),
		"no configuration file found")
}

// Load resolves and loads the configuration
// 1. Custom path if provided
// 2. Current directory .commit-wizard.json
// 3. Home directory ~/.commit-wizard.json
func Load(customPath string) (*OpenAIConfig, error) {
	path, err := Locate(customPath, DefaultSearchDirs())
	if err != nil {
		return nil, err
	}
	log.Debug("Using config file: %s", path)
	return LoadFromFile(path)
}
