// Package prompt implements ports.Prompter on a terminal. All prompts go to
// stderr so stdout stays clean for piping.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.trai.ch/zerr"
)

// Terminal reads answers line by line from an input stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

// NewTerminal wires the prompter to stdin/stderr and detects whether stdin is
// attached to a terminal.
func NewTerminal() *Terminal {
	fd := os.Stdin.Fd()
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		tty: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// newTerminal builds a prompter over arbitrary streams.
func newTerminal(in io.Reader, out io.Writer, tty bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, tty: tty}
}

// Interactive reports whether prompting is possible.
func (t *Terminal) Interactive() bool {
	return t.tty
}

// Confirm asks a yes/no question. Anything other than y or yes declines.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Input asks for a free-form value. An empty answer takes the suggestion.
func (t *Terminal) Input(prompt, suggestion string) (string, error) {
	if suggestion != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", prompt, suggestion)
	} else {
		fmt.Fprintf(t.out, "%s: ", prompt)
	}
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return suggestion, nil
	}
	return line, nil
}

// Select presents a numbered list and returns the chosen option.
func (t *Terminal) Select(prompt string, options []string) (string, error) {
	fmt.Fprintln(t.out, prompt)
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(t.out, "Selection [1-%d]: ", len(options))

	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return "", zerr.New("invalid selection: " + line)
	}
	return options[n-1], nil
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", zerr.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}
