package aliases_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aliases"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{name: "single_quoted", line: "alias gs='git status'", wantName: "gs", wantValue: "git status", wantOK: true},
		{name: "double_quoted", line: `alias ll="ls -la"`, wantName: "ll", wantValue: "ls -la", wantOK: true},
		{name: "unquoted", line: "alias k=kubectl", wantName: "k", wantValue: "kubectl", wantOK: true},
		{name: "indented", line: "    alias  gp = 'git push'  ", wantName: "gp", wantValue: "git push", wantOK: true},
		{name: "only_leading_quote", line: "alias x='echo hi", wantName: "x", wantValue: "echo hi", wantOK: true},
		{name: "one_layer_only", line: `alias q="'quoted'"`, wantName: "q", wantValue: "'quoted'", wantOK: true},
		{name: "value_with_equals", line: "alias e='env FOO=bar'", wantName: "e", wantValue: "env FOO=bar", wantOK: true},
		{name: "empty_value", line: "alias nothing=", wantName: "nothing", wantValue: "", wantOK: true},
		{name: "no_equals", line: "alias gs", wantOK: false},
		{name: "not_alias", line: "export PATH=$HOME/bin:$PATH", wantOK: false},
		{name: "alias_prefix_word", line: "aliases_dir=/tmp", wantOK: false},
		{name: "comment", line: "# alias gs='git status'", wantOK: false},
		{name: "empty_name", line: "alias ='oops'", wantOK: false},
		{name: "blank", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, value, ok := aliases.ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantName, name)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestParse_LastDefinitionWins(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# aliases",
		"alias gs='git status'",
		"export EDITOR=nvim",
		"alias ll='ls -l'",
		"alias gs='git status -sb'",
	}, "\n")

	got, err := aliases.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, aliases.Map{"gs": "git status -sb", "ll": "ls -l"}, got)
	assert.Equal(t, []string{"gs", "ll"}, got.Names())
	assert.True(t, got.Has("ll"))
	assert.False(t, got.Has("git"))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := aliases.Load(filepath.Join(t.TempDir(), ".zshrc"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(path, []byte("alias gs='git status'\n"), 0o600))

	got, err := aliases.Load(path)
	require.NoError(t, err)
	assert.Equal(t, aliases.Map{"gs": "git status"}, got)
}

func TestLoad_DirectoryIsError(t *testing.T) {
	t.Parallel()

	_, err := aliases.Load(t.TempDir())
	require.Error(t, err)
}
