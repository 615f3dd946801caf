package pager

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ClearScreen moves the cursor home and clears the terminal.
const ClearScreen = "\x1b[H\x1b[2J"

// LineReader supplies one line of user input per call. io.EOF ends paging.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Options tunes Run.
type Options struct {
	// Clear emits ClearScreen before every page.
	Clear bool
}

// Run shows one page at a time and reads navigation keys from input until the
// user quits or input ends.
func Run(sections []string, summary string, input LineReader, out io.Writer, opts Options) error {
	machine := NewMachine(len(sections))

	for machine.State() != StateQuit {
		page := summary
		if machine.State() == StateSection {
			page = sections[machine.Index]
		}

		if opts.Clear {
			page = ClearScreen + page
		}

		_, err := io.WriteString(out, page+"\n\n")
		if err != nil {
			return fmt.Errorf("write page: %w", err)
		}

		line, err := input.ReadLine(prompt(machine))
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read pager input: %w", err)
		}

		machine.Transition(ParseEvent(line))
	}

	return nil
}

// PrintAll writes every section followed by the summary.
func PrintAll(sections []string, summary string, out io.Writer) error {
	pages := append(append(make([]string, 0, len(sections)+1), sections...), summary)

	_, err := io.WriteString(out, strings.Join(pages, "\n\n")+"\n")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func prompt(m *Machine) string {
	if m.State() == StateSummary {
		return "[p]rev  [q]uit / Enter to finish > "
	}

	return fmt.Sprintf("[n]ext  [p]rev  [q]uit  (%d/%d) > ", m.Index+1, m.Count)
}
