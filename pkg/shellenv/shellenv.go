// Package shellenv locates the history and config files of the user's shell.
package shellenv

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// ErrUnsupportedShell is returned for shells whose history layout is not known.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Shell describes where a shell keeps its history and aliases.
type Shell struct {
	Name        string
	HistoryFile string
	ConfigFile  string
	Format      history.Format
}

type layout struct {
	history string
	config  string
	format  history.Format
}

var layouts = map[string]layout{
	"zsh":  {history: ".zsh_history", config: ".zshrc", format: history.FormatZsh},
	"bash": {history: ".bash_history", config: ".bashrc", format: history.FormatBash},
}

// Detect resolves the shell named by shellPath (typically $SHELL) under home.
func Detect(shellPath, home string) (Shell, error) {
	name := path.Base(shellPath)
	if shellPath == "" {
		name = ""
	}

	return Lookup(name, home)
}

// Lookup resolves a shell by bare name ("zsh", "bash").
func Lookup(name, home string) (Shell, error) {
	files, ok := layouts[name]
	if !ok {
		return Shell{}, fmt.Errorf("%w: %q", ErrUnsupportedShell, name)
	}

	return Shell{
		Name:        name,
		HistoryFile: filepath.Join(home, files.history),
		ConfigFile:  filepath.Join(home, files.config),
		Format:      files.format,
	}, nil
}
