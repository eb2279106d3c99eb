package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/commit"
	"github.com/evanfang0054/ai-commit-wizard/internal/llm"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
	"github.com/evanfang0054/ai-commit-wizard/pkg/lang"
)

var commitPromptTmpl = template.Must(template.New("commit_prompt").Parse(CommitPrompt))

// fencedJSON matches a fenced code block, optionally tagged json
var fencedJSON = regexp.MustCompile("(?is)```(?:json)?[ \\t]*\\r?\\n(.*?)\\r?\\n[ \\t]*```")

// SuggestionEngineOptions contains configuration for SuggestionEngine
type SuggestionEngineOptions struct {
	LLMProvider llm.Provider      // Provider of the chat model
	Language    lang.Language     // Language of the suggested subject
	Printer     *ui.StreamPrinter // Progress output (optional)
}

// Validate validates the options and sets defaults
func (o *SuggestionEngineOptions) Validate() error {
	if o.LLMProvider == nil {
		return fmt.Errorf("LLM provider is not configured")
	}
	if !o.Language.IsValid() {
		o.Language = lang.DefaultLanguage()
	}
	return nil
}

// SuggestionEngine asks the model for a commit type, scope and subject
type SuggestionEngine struct {
	opts SuggestionEngineOptions
}

// NewSuggestionEngine creates a new SuggestionEngine
func NewSuggestionEngine(opts SuggestionEngineOptions) (*SuggestionEngine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &SuggestionEngine{opts: opts}, nil
}

// BuildPrompt renders the user prompt for the given changes
func BuildPrompt(changes *StagedChangeSet, language lang.Language) (string, error) {
	data := struct {
		Language string
		Files    []string
		Diff     string
		Types    []commit.Type
	}{
		Language: language.PromptName(),
		Files:    changes.Files,
		Diff:     changes.DiffText,
		Types:    commit.Types,
	}

	var buf bytes.Buffer
	if err := commitPromptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// Suggest runs one completion over changes and parses the reply
// A failed call is an AI service error; an unusable reply yields the default suggestion
func (e *SuggestionEngine) Suggest(ctx context.Context, changes *StagedChangeSet) (*commit.AISuggestion, error) {
	printer := e.opts.Printer

	printStep := func(step int, msg string) {
		if printer != nil {
			_ = printer.PrintStep(step, msg)
		}
		log.Debug("Step %d: %s", step, msg)
	}

	printStep(1, "Analyzing file types and paths")
	if printer != nil {
		_ = printer.PrintFileList(changes.Files)
	}

	prompt, err := BuildPrompt(changes, e.opts.Language)
	if err != nil {
		return nil, err
	}

	cfg := e.opts.LLMProvider.GetConfig()
	providerName := e.opts.LLMProvider.Name()
	log.Debug("Using LLM: provider=%s, model=%s, temperature=%v, maxTokens=%d",
		providerName, cfg.Model, cfg.Temperature, cfg.MaxTokens)

	chatModel, err := e.opts.LLMProvider.CreateChatModel(ctx)
	if err != nil {
		return nil, apperror.AIService(err, "check openai.baseURL in your config file", "failed to create chat model")
	}
	if chatModel == nil {
		return nil, apperror.AIService(nil, "", "chat model is nil (provider: %s)", providerName)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: SystemMessage},
		{Role: schema.User, Content: prompt},
	}
	log.DebugPrompt("system", SystemMessage)
	log.DebugPrompt("user", prompt)

	if printer != nil {
		_ = printer.PrintProgress(fmt.Sprintf("Calling AI to analyze changes (%s/%s)...", providerName, cfg.Model))
	}

	start := time.Now()
	resp, err := chatModel.Generate(ctx, messages,
		model.WithTemperature(float32(cfg.Temperature)),
		model.WithMaxTokens(cfg.MaxTokens),
		model.WithTopP(1),
	)
	elapsed := time.Since(start)
	log.DebugDuration("Completion", elapsed)
	if err != nil {
		if printer != nil {
			_ = printer.PrintError("AI analysis failed")
		}
		return nil, apperror.AIService(err, llm.Hint(err), "AI service call failed")
	}

	stats := &ui.ExecutionStats{StartTime: start, EndTime: start.Add(elapsed)}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		usage := resp.ResponseMeta.Usage
		stats.PromptTokens = usage.PromptTokens
		stats.CompletionTokens = usage.CompletionTokens
		stats.TotalTokens = usage.TotalTokens
		log.DebugTokenUsage(usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
	}
	log.DebugResponse(resp.Content)

	if printer != nil {
		_ = printer.PrintSuccess("AI analysis complete")
		_ = printer.PrintRaw(resp.Content)
		if log.IsDebugMode() {
			_ = printer.PrintStats(stats)
		}
	}

	printStep(2, "Parsing AI suggestion")
	suggestion := ParseSuggestion(resp.Content, e.opts.Language)
	if suggestion.Source == commit.SourceDefault && printer != nil {
		_ = printer.PrintWarning("The AI reply could not be parsed, using the default suggestion")
	}

	if printer != nil {
		_ = printer.PrintSuggestion(suggestion.Type, suggestion.Scope, suggestion.Subject)
	}
	return &suggestion, nil
}

// suggestionJSON is the object the model is asked to return
type suggestionJSON struct {
	Type    string `json:"type"`
	Scope   string `json:"scope"`
	Subject string `json:"subject"`
}

// ParseSuggestion extracts a suggestion from the model reply
// The body of a fenced block is preferred, else the whole trimmed text is parsed;
// anything unusable yields the default suggestion for language
func ParseSuggestion(text string, language lang.Language) commit.AISuggestion {
	body := strings.TrimSpace(text)
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var raw *suggestionJSON
	if err := json.Unmarshal([]byte(body), &raw); err != nil || raw == nil {
		if err == nil {
			err = fmt.Errorf("reply is null")
		}
		log.Warn("failed to parse AI suggestion: %v", err)
		return DefaultSuggestion(language)
	}

	suggestion := commit.AISuggestion{
		Type:    strings.TrimSpace(raw.Type),
		Scope:   strings.TrimSpace(raw.Scope),
		Subject: strings.TrimSpace(raw.Subject),
		Source:  commit.SourceParsed,
	}
	if suggestion.Type == "" {
		suggestion.Type = commit.DefaultType
	}
	if suggestion.Subject == "" {
		suggestion.Subject = language.DefaultSubject()
	}
	return suggestion
}

// DefaultSuggestion is used when the model reply is unusable
func DefaultSuggestion(language lang.Language) commit.AISuggestion {
	return commit.AISuggestion{
		Type:    commit.DefaultType,
		Subject: language.DefaultSubject(),
		Source:  commit.SourceDefault,
	}
}
