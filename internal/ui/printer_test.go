package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStreamPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStreamPrinter(&buf)
	require.NotNil(t, printer)
	assert.True(t, printer.colorEnabled)
	assert.False(t, printer.verbose)
}

func TestStreamPrinter_Lines(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *StreamPrinter) error
		want  string
	}{
		{"thinking", func(p *StreamPrinter) error { return p.PrintThinking("Analyzing paths") }, "💭 Analyzing paths\n"},
		{"step", func(p *StreamPrinter) error { return p.PrintStep(2, "Parsing reply") }, "📋 Step 2: Parsing reply\n"},
		{"progress", func(p *StreamPrinter) error { return p.PrintProgress("Calling model") }, "⏳ Calling model\n"},
		{"success", func(p *StreamPrinter) error { return p.PrintSuccess("done") }, "✅ done\n"},
		{"warning", func(p *StreamPrinter) error { return p.PrintWarning("careful") }, "⚠️  careful\n"},
		{"error", func(p *StreamPrinter) error { return p.PrintError("something went wrong") }, "❌ Error: something went wrong\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer := NewStreamPrinter(&buf, WithColor(false))

			require.NoError(t, tt.print(printer))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestStreamPrinter_PrintFileList(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStreamPrinter(&buf, WithColor(false))

	err := printer.PrintFileList([]string{"src/user/login.go", "docs/"})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "1. 📄 src/user/login.go")
	assert.Contains(t, output, "2. 📂 docs/")
	assert.Contains(t, output, "Total: 2 files")
}

func TestStreamPrinter_PrintSuggestion(t *testing.T) {
	t.Run("with scope", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewStreamPrinter(&buf, WithColor(false))

		require.NoError(t, printer.PrintSuggestion("feat", "user", "add login"))
		assert.Contains(t, buf.String(), "Type:    feat")
		assert.Contains(t, buf.String(), "Scope:   user")
		assert.Contains(t, buf.String(), "Subject: add login")
	})

	t.Run("without scope", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewStreamPrinter(&buf, WithColor(false))

		require.NoError(t, printer.PrintSuggestion("chore", "", "update code"))
		assert.NotContains(t, buf.String(), "Scope:")
	})
}

func TestStreamPrinter_PrintRaw(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewStreamPrinter(&buf, WithColor(false))
	require.NoError(t, quiet.PrintRaw(`{"type":"feat"}`))
	assert.Empty(t, buf.String())

	verbose := NewStreamPrinter(&buf, WithColor(false), WithVerbose(true))
	require.NoError(t, verbose.PrintRaw(`{"type":"feat"}`))
	assert.Equal(t, "{\"type\":\"feat\"}\n", buf.String())
}

func TestExecutionStats(t *testing.T) {
	startTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	endTime := time.Date(2024, 1, 1, 12, 0, 2, 0, time.UTC)

	stats := &ExecutionStats{
		StartTime:        startTime,
		EndTime:          endTime,
		PromptTokens:     100,
		CompletionTokens: 50,
		TotalTokens:      150,
	}

	assert.Equal(t, 2*time.Second, stats.Duration())
}

func TestStreamPrinter_PrintStats(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStreamPrinter(&buf, WithColor(false))

	start := time.Now()
	stats := &ExecutionStats{
		StartTime:        start,
		EndTime:          start.Add(1500 * time.Millisecond),
		PromptTokens:     100,
		CompletionTokens: 50,
		TotalTokens:      150,
	}

	require.NoError(t, printer.PrintStats(stats))
	assert.Contains(t, buf.String(), "150 tokens")
	assert.Contains(t, buf.String(), "1.50s")

	buf.Reset()
	require.NoError(t, printer.PrintStats(nil))
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "2.00s", formatDuration(2*time.Second))
}

func TestStreamPrinter_Newline(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStreamPrinter(&buf)

	err := printer.Newline()
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

func TestStreamPrinter_CustomWriter(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()

	printer := NewStreamPrinter(pw, WithColor(false))

	go func() {
		defer pw.Close()
		_ = printer.PrintInfo("test")
	}()

	buf := make([]byte, 100)
	n, _ := pr.Read(buf)
	assert.Contains(t, string(buf[:n]), "test")
}
