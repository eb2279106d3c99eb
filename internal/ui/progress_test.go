package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)
	assert.False(t, progress.animate)

	phase := progress.Start("git-check", "Checking git status...")
	assert.Contains(t, progress.active, "git-check")

	phase.Succeed("Git status checked")
	assert.NotContains(t, progress.active, "git-check")

	assert.Equal(t, "⏳ Checking git status...\n✅ Git status checked\n", buf.String())
}

func TestPhase_FinishOnce(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)

	phase := progress.Start("commit", "Committing...")
	phase.Fail("Commit failed")
	phase.Succeed("ignored")
	phase.Close()

	assert.Equal(t, "⏳ Committing...\n❌ Commit failed\n", buf.String())
	assert.NotContains(t, progress.active, "commit")
}

func TestPhase_CloseIsSilent(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)

	phase := progress.Start("push", "Pushing...")
	phase.Close()

	assert.Equal(t, "⏳ Pushing...\n", buf.String())
	assert.NotContains(t, progress.active, "push")
}

func TestProgress_RestartStopsPrevious(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)

	first := progress.Start("push", "Pushing...")
	second := progress.Start("push", "Pushing again...")

	assert.True(t, first.done)
	assert.False(t, second.done)
	assert.Contains(t, progress.active, "push")

	// Finishing the stale handle must not drop the new one
	first.Succeed("stale")
	assert.Contains(t, progress.active, "push")

	second.Succeed("Pushed")
	assert.NotContains(t, progress.active, "push")
}
