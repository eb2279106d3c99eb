package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrNoOptions is returned by Select when there is nothing to choose from
var ErrNoOptions = errors.New("no options to select from")

// Option is one entry of a selection list
type Option struct {
	Value       string
	Description string
}

// Label returns the text shown for the option in a list
func (o Option) Label() string {
	if o.Description == "" {
		return o.Value
	}
	return fmt.Sprintf("%-9s %s", o.Value, o.Description)
}

// Prompter reads answers from a single buffered input
// All prompts of a run must share one Prompter so buffered input is not lost
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from input and writing to output
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(input), out: output}
}

// readLine reads one line without its terminator
// A final line without newline is returned as is; io.EOF only when nothing is left
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question, returning defaultYes on empty input
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	var prompt string
	if defaultYes {
		prompt = fmt.Sprintf("%s [Y/n]: ", message)
	} else {
		prompt = fmt.Sprintf("%s [y/N]: ", message)
	}

	for {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return false, err
		}

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(p.out, "Please enter 'y' or 'n'"); err != nil {
				return false, err
			}
		}
	}
}

// Input asks for free text, repeating the question until validate accepts the answer
// The returned answer is trimmed; a nil validate accepts anything
func (p *Prompter) Input(message string, validate func(string) error) (string, error) {
	red := color.New(color.FgRed)

	for {
		if _, err := fmt.Fprintf(p.out, "%s: ", message); err != nil {
			return "", err
		}

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if validate == nil {
			return answer, nil
		}
		if verr := validate(answer); verr != nil {
			if _, err := red.Fprintf(p.out, "  ✗ %v\n", verr); err != nil {
				return "", err
			}
			continue
		}
		return answer, nil
	}
}

// Select asks the user to pick one of options and returns its index
// The answer may be a list number, an exact value, or a search term that narrows the list
func (p *Prompter) Select(message string, options []Option, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	candidates := allIndexes(len(options))
	for {
		if _, err := fmt.Fprintln(p.out, message); err != nil {
			return -1, err
		}
		for i, idx := range candidates {
			marker := "  "
			if idx == defaultIndex {
				marker = "> "
			}
			if _, err := cyan.Fprintf(p.out, "%s%d. %s\n", marker, i+1, options[idx].Label()); err != nil {
				return -1, err
			}
		}
		if _, err := gray.Fprintf(p.out, "Enter a number, a value or a search term [default: %s]: ", options[defaultIndex].Value); err != nil {
			return -1, err
		}

		line, err := p.readLine()
		if err != nil {
			return -1, err
		}
		answer := strings.TrimSpace(line)

		if answer == "" {
			return defaultIndex, nil
		}

		if n, convErr := strconv.Atoi(answer); convErr == nil {
			if n >= 1 && n <= len(candidates) {
				return candidates[n-1], nil
			}
			if _, err := fmt.Fprintf(p.out, "Invalid selection, please enter a number between 1 and %d\n", len(candidates)); err != nil {
				return -1, err
			}
			continue
		}

		for idx, opt := range options {
			if strings.EqualFold(opt.Value, answer) {
				return idx, nil
			}
		}

		matches := searchOptions(options, answer)
		switch len(matches) {
		case 0:
			if _, err := fmt.Fprintf(p.out, "No options match %q\n", answer); err != nil {
				return -1, err
			}
			candidates = allIndexes(len(options))
		case 1:
			return matches[0], nil
		default:
			candidates = matches
		}
	}
}

// searchOptions returns the indexes of options whose value or description contains term
func searchOptions(options []Option, term string) []int {
	term = strings.ToLower(term)
	var matches []int
	for idx, opt := range options {
		if strings.Contains(strings.ToLower(opt.Value), term) ||
			strings.Contains(strings.ToLower(opt.Description), term) {
			matches = append(matches, idx)
		}
	}
	return matches
}

func allIndexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Confirm asks the user for a yes/no confirmation
// Default is no (returns false on empty input)
func Confirm(message string, input io.Reader, output io.Writer) (bool, error) {
	return ConfirmWithDefault(message, false, input, output)
}

// ConfirmWithDefault asks the user for a yes/no confirmation with a specified default
func ConfirmWithDefault(message string, defaultYes bool, input io.Reader, output io.Writer) (bool, error) {
	return NewPrompter(input, output).Confirm(message, defaultYes)
}

// ShowCommitMessage displays a formatted commit message
func ShowCommitMessage(message string, output io.Writer) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	if _, err := bold.Fprintln(output, "\n📝 Commit Message:"); err != nil {
		return err
	}
	if _, err := cyan.Fprintln(output, "─────────────────────────────"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(output, message); err != nil {
		return err
	}
	_, err := cyan.Fprintln(output, "─────────────────────────────")
	return err
}
