package pager

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineInput reads navigation keys from the controlling terminal.
type ReadlineInput struct {
	rl *readline.Instance
}

// NewReadlineInput opens a readline instance on stdin/stdout.
func NewReadlineInput() (*ReadlineInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:        "^C",
		EOFPrompt:              "q",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}

	return &ReadlineInput{rl: rl}, nil
}

// ReadLine prompts and returns the typed line. Ctrl+C and Ctrl+D both return io.EOF.
func (in *ReadlineInput) ReadLine(prompt string) (string, error) {
	in.rl.SetPrompt(prompt)

	line, err := in.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}

// Close restores the terminal.
func (in *ReadlineInput) Close() error {
	return in.rl.Close()
}
