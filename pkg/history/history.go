// Package history parses timestamped shell history logs into command entries.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format identifies the on-disk layout of a history file.
type Format string

// Supported history formats.
const (
	// FormatZsh is the zsh EXTENDED_HISTORY layout: ": <epoch>:<duration>;<command>".
	FormatZsh Format = "zsh"
	// FormatBash is the bash HISTTIMEFORMAT layout: "#<epoch>" followed by the command line.
	FormatBash Format = "bash"
)

const (
	zshPrefix       = ": "
	zshHeaderSep    = ":"
	zshCommandSep   = ";"
	bashStampPrefix = "#"
)

// ErrUnknownFormat is returned when a parser is configured with an unsupported format.
var ErrUnknownFormat = errors.New("unknown history format")

// Entry is one parsed (command, timestamp) observation.
type Entry struct {
	Command   string        `json:"command" yaml:"command"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Stats describes how many lines were read, accepted and skipped.
type Stats struct {
	Lines   int `json:"lines" yaml:"lines"`
	Entries int `json:"entries" yaml:"entries"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Parser turns history text into entries.
type Parser struct {
	location *time.Location
	format   Format
}

// Option configures a Parser.
type Option func(*Parser)

// WithLocation sets the zone timestamps are interpreted in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithFormat selects the history layout. Defaults to FormatZsh.
func WithFormat(format Format) Option {
	return func(p *Parser) {
		p.format = format
	}
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{
		location: time.Local,
		format:   FormatZsh,
	}

	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Scan returns a lazy reader over r. Nothing is read until Entries is iterated.
func (p *Parser) Scan(r io.Reader) *Scanner {
	decoded := transform.NewReader(r, unicode.UTF8.NewDecoder())

	return &Scanner{
		parser: p,
		reader: bufio.NewReader(decoded),
	}
}

// Parse reads every entry from r in file order.
func (p *Parser) Parse(r io.Reader) ([]Entry, Stats, error) {
	scanner := p.Scan(r)

	var entries []Entry

	for entry := range scanner.Entries() {
		entries = append(entries, entry)
	}

	return entries, scanner.Stats(), scanner.Err()
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) ([]Entry, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	entries, stats, err := p.Parse(file)
	if err != nil {
		return nil, stats, fmt.Errorf("read history file %s: %w", path, err)
	}

	return entries, stats, nil
}

// Scanner yields entries one line at a time.
type Scanner struct {
	parser *Parser
	reader *bufio.Reader
	stats  Stats
	err    error

	// pending holds the bash timestamp waiting for its command line.
	pending *time.Time
}

// Entries returns the entry sequence. It can be ranged over once.
func (s *Scanner) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			line, readErr := s.reader.ReadString('\n')
			if line != "" {
				s.stats.Lines++

				entry, ok := s.parseLine(line)
				if ok {
					s.stats.Entries++

					if !yield(entry) {
						return
					}
				} else {
					s.stats.Skipped++
				}
			}

			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					s.err = readErr
				}

				return
			}
		}
	}
}

// Err returns the first read error, if any. Malformed lines are never errors.
func (s *Scanner) Err() error {
	return s.err
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

func (s *Scanner) parseLine(line string) (Entry, bool) {
	switch s.parser.format {
	case FormatBash:
		return s.parseBashLine(line)
	default:
		return s.parser.parseZshLine(line)
	}
}

// parseZshLine handles ": 1700000000:0;git status". Only the first ';' is structural.
func (p *Parser) parseZshLine(line string) (Entry, bool) {
	rest, ok := strings.CutPrefix(line, zshPrefix)
	if !ok {
		return Entry{}, false
	}

	header, command, ok := strings.Cut(rest, zshCommandSep)
	if !ok {
		return Entry{}, false
	}

	epochField, durationField, ok := strings.Cut(header, zshHeaderSep)
	if !ok {
		return Entry{}, false
	}

	epoch, err := strconv.ParseInt(strings.TrimSpace(epochField), 10, 64)
	if err != nil {
		return Entry{}, false
	}

	entry := Entry{
		Command:   strings.TrimSpace(command),
		Timestamp: time.Unix(epoch, 0).In(p.location),
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(durationField), 10, 64)
	if err == nil && seconds > 0 {
		entry.Duration = time.Duration(seconds) * time.Second
	}

	return entry, true
}

func (s *Scanner) parseBashLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Entry{}, false
	}

	if stamp, ok := strings.CutPrefix(trimmed, bashStampPrefix); ok {
		epoch, err := strconv.ParseInt(stamp, 10, 64)
		if err == nil {
			ts := time.Unix(epoch, 0).In(s.parser.location)
			s.pending = &ts
		}

		return Entry{}, false
	}

	if s.pending == nil {
		return Entry{}, false
	}

	entry := Entry{Command: trimmed, Timestamp: *s.pending}
	s.pending = nil

	return entry, true
}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatZsh:
		return FormatZsh, nil
	case FormatBash:
		return FormatBash, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
