package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Progress owns the phase indicators of one run
// A spinner is shown only when the output is a terminal; otherwise plain lines are written
type Progress struct {
	out     io.Writer
	animate bool
	active  map[string]*Phase
}

// NewProgress creates a Progress writing to out
func NewProgress(out io.Writer) *Progress {
	return &Progress{
		out:     out,
		animate: isTerminal(out),
		active:  make(map[string]*Phase),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start begins a phase identified by id
// Starting an id that is still active stops the previous indicator first
func (p *Progress) Start(id, message string) *Phase {
	if prev, ok := p.active[id]; ok {
		prev.stop()
	}

	ph := &Phase{id: id, progress: p}
	if p.animate {
		ph.spinner = spinner.New(
			spinner.CharSets[14],
			100*time.Millisecond,
			spinner.WithWriter(p.out),
			spinner.WithColor("cyan"),
			spinner.WithSuffix(" "+message),
		)
		ph.spinner.Start()
	} else {
		fmt.Fprintf(p.out, "⏳ %s\n", message)
	}

	p.active[id] = ph
	return ph
}

// Phase is a handle on one running indicator
type Phase struct {
	id       string
	progress *Progress
	spinner  *spinner.Spinner
	done     bool
}

// Succeed ends the phase with a success line
func (ph *Phase) Succeed(message string) {
	ph.finish(color.FgGreen, "✅", message)
}

// Fail ends the phase with a failure line
func (ph *Phase) Fail(message string) {
	ph.finish(color.FgRed, "❌", message)
}

// Close ends the phase silently; it is a no-op once the phase has finished
func (ph *Phase) Close() {
	ph.stop()
}

func (ph *Phase) finish(attr color.Attribute, icon, message string) {
	if ph.done {
		return
	}
	ph.stop()
	color.New(attr).Fprintf(ph.progress.out, "%s %s\n", icon, message)
}

func (ph *Phase) stop() {
	if ph.done {
		return
	}
	ph.done = true
	if ph.spinner != nil {
		ph.spinner.Stop()
	}
	if ph.progress.active[ph.id] == ph {
		delete(ph.progress.active, ph.id)
	}
}
