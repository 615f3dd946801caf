// Package aliases reads shell alias definitions from a shell config file.
package aliases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	aliasKeyword = "alias"
	assignSep    = "="
	quoteChars   = `'"`
)

// Map maps an alias name to its expansion.
type Map map[string]string

// Names returns the alias names in ascending order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Has reports whether name is a defined alias.
func (m Map) Has(name string) bool {
	_, ok := m[name]

	return ok
}

// Load reads aliases from the config file at path.
// A missing file yields an empty map and no error.
func Load(path string) (Map, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Map{}, nil
		}

		return nil, fmt.Errorf("open alias file: %w", err)
	}
	defer file.Close()

	aliases, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("read alias file %s: %w", path, err)
	}

	return aliases, nil
}

// Parse collects every `alias name=value` definition in r. Later definitions win.
func Parse(r io.Reader) (Map, error) {
	reader := bufio.NewReader(transform.NewReader(r, textunicode.UTF8.NewDecoder()))
	aliases := Map{}

	for {
		line, readErr := reader.ReadString('\n')
		if name, value, ok := ParseLine(line); ok {
			aliases[name] = value
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return aliases, nil
			}

			return aliases, readErr
		}
	}
}

// ParseLine parses a single config line. ok is false when the line is not an alias definition.
func ParseLine(line string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(line)

	rest, found := strings.CutPrefix(trimmed, aliasKeyword)
	if !found || rest == "" || !unicode.IsSpace(rune(rest[0])) {
		return "", "", false
	}

	rawName, rawValue, found := strings.Cut(rest, assignSep)
	if !found {
		return "", "", false
	}

	name = strings.TrimSpace(rawName)
	if name == "" {
		return "", "", false
	}

	return name, unquote(strings.TrimSpace(rawValue)), true
}

// unquote removes at most one quote character from each end.
func unquote(value string) string {
	if value != "" && strings.ContainsRune(quoteChars, rune(value[0])) {
		value = value[1:]
	}

	if value != "" && strings.ContainsRune(quoteChars, rune(value[len(value)-1])) {
		value = value[:len(value)-1]
	}

	return value
}
