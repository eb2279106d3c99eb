package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ExecutionStats holds statistics about one completion call
type ExecutionStats struct {
	StartTime        time.Time
	EndTime          time.Time
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Duration returns the execution duration
func (s *ExecutionStats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// StreamPrinterOption is a functional option for StreamPrinter
type StreamPrinterOption func(*StreamPrinter)

// WithColor enables or disables color output
func WithColor(enabled bool) StreamPrinterOption {
	return func(p *StreamPrinter) {
		p.colorEnabled = enabled
	}
}

// WithVerbose enables or disables verbose mode
func WithVerbose(verbose bool) StreamPrinterOption {
	return func(p *StreamPrinter) {
		p.verbose = verbose
	}
}

// StreamPrinter writes the progress lines of the suggestion flow
type StreamPrinter struct {
	writer       io.Writer
	colorEnabled bool
	verbose      bool
}

// NewStreamPrinter creates a new StreamPrinter
func NewStreamPrinter(writer io.Writer, opts ...StreamPrinterOption) *StreamPrinter {
	p := &StreamPrinter{
		writer:       writer,
		colorEnabled: true,
		verbose:      false,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// printf writes a line in the given color, or plain when color is disabled
func (p *StreamPrinter) printf(attr color.Attribute, format string, args ...interface{}) error {
	if p.colorEnabled {
		_, err := color.New(attr).Fprintf(p.writer, format, args...)
		return err
	}
	_, err := fmt.Fprintf(p.writer, format, args...)
	return err
}

// PrintThinking prints an analysis phase
func (p *StreamPrinter) PrintThinking(message string) error {
	return p.printf(color.FgHiBlack, "💭 %s\n", message)
}

// PrintStep prints a step in the process
func (p *StreamPrinter) PrintStep(step int, message string) error {
	return p.printf(color.FgBlue, "📋 Step %d: %s\n", step, message)
}

// PrintProgress prints a progress message
func (p *StreamPrinter) PrintProgress(message string) error {
	return p.printf(color.FgYellow, "⏳ %s\n", message)
}

// PrintInfo prints an info message
func (p *StreamPrinter) PrintInfo(message string) error {
	return p.printf(color.FgCyan, "ℹ️  %s\n", message)
}

// PrintSuccess prints a success message
func (p *StreamPrinter) PrintSuccess(message string) error {
	return p.printf(color.FgGreen, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func (p *StreamPrinter) PrintWarning(message string) error {
	return p.printf(color.FgYellow, "⚠️  %s\n", message)
}

// PrintError prints an error message
func (p *StreamPrinter) PrintError(message string) error {
	return p.printf(color.FgRed, "❌ Error: %s\n", message)
}

// PrintFileList prints the analyzed files with their position and an icon
func (p *StreamPrinter) PrintFileList(files []string) error {
	if err := p.printf(color.FgCyan, "\n📁 Files to analyze:\n"); err != nil {
		return err
	}
	for i, file := range files {
		if err := p.printf(color.FgGreen, "   %d. %s %s\n", i+1, fileIcon(file), file); err != nil {
			return err
		}
	}
	return p.printf(color.FgHiBlack, "\n   Total: %d files\n\n", len(files))
}

// PrintSuggestion prints the suggested commit fields
func (p *StreamPrinter) PrintSuggestion(commitType, scope, subject string) error {
	if err := p.printf(color.FgCyan, "\n✨ AI suggestion:\n"); err != nil {
		return err
	}
	if err := p.printf(color.Reset, "   Type:    %s\n", commitType); err != nil {
		return err
	}
	if scope != "" {
		if err := p.printf(color.Reset, "   Scope:   %s\n", scope); err != nil {
			return err
		}
	}
	return p.printf(color.Reset, "   Subject: %s\n\n", subject)
}

// PrintStats prints execution statistics
func (p *StreamPrinter) PrintStats(stats *ExecutionStats) error {
	if stats == nil {
		return nil
	}

	return p.printf(color.FgHiBlack, "📊 Stats: %d tokens (prompt: %d, completion: %d) | Time: %s\n",
		stats.TotalTokens, stats.PromptTokens, stats.CompletionTokens, formatDuration(stats.Duration()))
}

// PrintRaw prints the raw model reply in verbose mode
func (p *StreamPrinter) PrintRaw(content string) error {
	if !p.verbose {
		return nil
	}
	return p.printf(color.FgHiBlack, "%s\n", content)
}

// Newline prints a newline
func (p *StreamPrinter) Newline() error {
	_, err := fmt.Fprintln(p.writer)
	return err
}

// fileIcon returns the icon shown before a staged path
func fileIcon(path string) string {
	if strings.HasSuffix(path, "/") {
		return "📂"
	}
	return "📄"
}

// formatDuration formats a duration in a human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
