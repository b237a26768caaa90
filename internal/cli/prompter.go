package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user questions on the terminal, honoring Ctrl-C via
// context cancellation.
type Prompter struct {
	reader *NonBlockingReader
	out    io.Writer
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: NewNonBlockingReader(in),
		out:    out,
	}
}

// Confirm asks a yes/no question. Empty input picks the default.
func (p *Prompter) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, FormatPrompt(question+" "+hint))

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask reads a free-text answer. Empty input picks the default.
func (p *Prompter) Ask(ctx context.Context, question, defaultAnswer string) (string, error) {
	prompt := question
	if defaultAnswer != "" {
		prompt += fmt.Sprintf(" (default: %s)", defaultAnswer)
	}
	fmt.Fprint(p.out, FormatPrompt(prompt))

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultAnswer, nil
	}
	return line, nil
}
