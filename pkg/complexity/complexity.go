// Package complexity scores shell commands by the metacharacters they use.
package complexity

import (
	"slices"
	"strings"
	"unicode"
)

// Metacharacters counted by Score. Every occurrence adds one point.
const Metacharacters = "|&;()<>[]{}$\\'\"`!#*?"

// Result is the complexity of a single command.
type Result struct {
	Command string `json:"command" yaml:"command"`
	Score   int    `json:"score" yaml:"score"`
	// SpecialChars is the distinct set of punctuation in Command, sorted by code point.
	// It is broader than Metacharacters and is not what Score counts.
	SpecialChars []rune `json:"special_chars" yaml:"special_chars"`
}

// SpecialString returns SpecialChars as a string, for display.
func (r Result) SpecialString() string {
	return string(r.SpecialChars)
}

// Score computes the complexity of command.
func Score(command string) Result {
	score := 0
	seen := make(map[rune]struct{})

	for _, char := range command {
		if strings.ContainsRune(Metacharacters, char) {
			score++
		}

		if isSpecial(char) {
			seen[char] = struct{}{}
		}
	}

	special := make([]rune, 0, len(seen))
	for char := range seen {
		special = append(special, char)
	}

	slices.Sort(special)

	return Result{
		Command:      command,
		Score:        score,
		SpecialChars: special,
	}
}

func isSpecial(char rune) bool {
	return !unicode.IsLetter(char) && !unicode.IsNumber(char) && !unicode.IsSpace(char)
}

// Level is a named complexity tier.
type Level int

// Complexity tiers, lowest first.
const (
	LevelSimple Level = iota
	LevelFancy
	LevelJuggling
	LevelRoyalty
	LevelMaximum
)

// Tier upper bounds (exclusive).
const (
	simpleBelow   = 5
	fancyBelow    = 10
	jugglingBelow = 15
	royaltyBelow  = 20
)

// LevelOf maps a score to its tier.
func LevelOf(score int) Level {
	switch {
	case score < simpleBelow:
		return LevelSimple
	case score < fancyBelow:
		return LevelFancy
	case score < jugglingBelow:
		return LevelJuggling
	case score < royaltyBelow:
		return LevelRoyalty
	default:
		return LevelMaximum
	}
}
