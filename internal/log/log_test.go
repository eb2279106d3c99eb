package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	noColor := color.NoColor
	color.NoColor = true
	SetOutput(buf)
	SetDebugMode(debug)
	t.Cleanup(func() {
		color.NoColor = noColor
		SetOutput(os.Stderr)
		SetDebugMode(false)
	})
	return buf
}

func TestDebug_OnlyInDebugMode(t *testing.T) {
	buf := withBuffer(t, false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetDebugMode(true)
	assert.True(t, IsDebugMode())
	Debug("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", buf.String())
}

func TestDebugConfig(t *testing.T) {
	buf := withBuffer(t, true)

	DebugConfig("Configuration", map[string]string{"model": "gpt-4o-mini"})
	assert.Contains(t, buf.String(), "[DEBUG] Configuration:")
	assert.Contains(t, buf.String(), `"model": "gpt-4o-mini"`)
}

func TestDebugPrompt_Truncates(t *testing.T) {
	buf := withBuffer(t, true)

	long := make([]byte, 3000)
	for i := range long {
		long[i] = 'a'
	}
	DebugPrompt("user", string(long))

	assert.Contains(t, buf.String(), "Prompt (user), 3000 bytes")
	assert.Contains(t, buf.String(), "...")
}

func TestWarn(t *testing.T) {
	buf := withBuffer(t, false)

	Warn("unknown config key %q ignored", "foo")
	assert.Equal(t, "Warning: unknown config key \"foo\" ignored\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))

	// Multi-byte text is cut on rune boundaries
	assert.Equal(t, "提交信...", truncate("提交信息生成", 3))
	assert.Equal(t, "更新代码", truncate("更新代码", 4))
	assert.True(t, utf8.ValidString(truncate("コミットメッセージ", 5)))
}

func TestDebugPrompt_TruncatesMultiByte(t *testing.T) {
	buf := withBuffer(t, true)

	DebugPrompt("user", strings.Repeat("变", 2500))

	assert.True(t, utf8.ValidString(buf.String()))
	assert.Contains(t, buf.String(), strings.Repeat("变", 2000)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("变", 2001))
}
