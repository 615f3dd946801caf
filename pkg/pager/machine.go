// Package pager pages through report sections one screen at a time.
package pager

import "strings"

// State is the pager position kind.
type State int

// Pager states.
const (
	StateSection State = iota
	StateSummary
	StateQuit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSection:
		return "section"
	case StateSummary:
		return "summary"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a user action.
type Event int

// Pager events. EventNone leaves the machine unchanged.
const (
	EventNone Event = iota
	EventNext
	EventPrevious
	EventQuit
)

// ParseEvent maps a line of user input to an event.
func ParseEvent(input string) Event {
	key := strings.ToLower(strings.TrimSpace(input))

	// A lone space is trimmed away, so it reads as Enter.
	switch key {
	case "", "n", "j":
		return EventNext
	case "p", "b", "k":
		return EventPrevious
	case "q", "quit", "exit":
		return EventQuit
	default:
		return EventNone
	}
}

// Machine tracks the current page. Index == Count is the summary page.
type Machine struct {
	Index int
	Count int

	quit bool
}

// NewMachine starts on the first section, or on the summary when there are none.
func NewMachine(count int) *Machine {
	return &Machine{Count: max(count, 0)}
}

// State returns the current state.
func (m *Machine) State() State {
	switch {
	case m.quit:
		return StateQuit
	case m.Index >= m.Count:
		return StateSummary
	default:
		return StateSection
	}
}

// Transition applies event and returns the resulting state. Index stays within [0, Count].
func (m *Machine) Transition(event Event) State {
	if m.quit {
		return StateQuit
	}

	switch event {
	case EventNext:
		if m.Index >= m.Count {
			m.quit = true
		} else {
			m.Index++
		}
	case EventPrevious:
		m.Index = max(m.Index-1, 0)
	case EventQuit:
		m.quit = true
	case EventNone:
	}

	return m.State()
}
