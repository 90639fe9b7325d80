package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

var (
	// ErrInputClosed is returned when the input ends before the stop word.
	ErrInputClosed = errors.New("input closed")
	// ErrInterrupted is returned when the user presses Ctrl-C at a prompt.
	ErrInterrupted = errors.New("interrupted")
)

type Prompter interface {
	Ask(label string) (string, error)
}

// TerminalPrompter asks through promptui; used when stdin is a terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Ask(label string) (string, error) {
	p := promptui.Prompt{Label: label}

	v, err := p.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, promptui.ErrEOF):
		return "", ErrInputClosed
	}

	return v, err
}

// LinePrompter reads answers line by line, e.g. from a piped file.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(label string) (string, error) {
	if p.out != nil {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	s, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// StdPrompter picks promptui for terminals and line reading otherwise.
func StdPrompter() Prompter {
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		return TerminalPrompter{}
	}

	return NewLinePrompter(os.Stdin, os.Stdout)
}

// AskUntil collects answers until one equals stop exactly. With skipEmpty,
// blank answers are dropped.
func AskUntil(p Prompter, label, stop string, skipEmpty bool) ([]string, error) {
	var out []string
	for {
		v, err := p.Ask(label)
		if err != nil {
			return out, err
		}
		if v == stop {
			return out, nil
		}
		if skipEmpty && strings.TrimSpace(v) == "" {
			continue
		}

		out = append(out, v)
	}
}

// Confirm asks a y/N question.
func Confirm(p Prompter, label string) bool {
	v, err := p.Ask(label + " [y/N]")
	if err != nil {
		return false
	}

	v = strings.TrimSpace(strings.ToLower(v))
	return v == "y" || v == "yes"
}
