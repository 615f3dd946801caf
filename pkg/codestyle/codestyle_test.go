// Package codestyle_test enforces repository-wide layout rules on every Go source file.
package codestyle_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/Sumatoshi-tech/termwrapped"

// maxInterfaceMethods bounds interface size.
const maxInterfaceMethods = 3

type sourceFile struct {
	rel  string
	file *ast.File
}

func projectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		_, statErr := os.Stat(filepath.Join(dir, "go.mod"))
		if statErr == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		require.NotEqual(t, parent, dir, "no go.mod above %s", dir)

		dir = parent
	}
}

// skipDir mirrors the go tool: "_" and "." prefixed directories and testdata are not packages.
func skipDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") ||
		name == "testdata" || name == "vendor"
}

// sources parses every non-test Go file of the module.
func sources(t *testing.T) []sourceFile {
	t.Helper()

	root := projectRoot(t)

	var files []sourceFile

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != root && skipDir(entry.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		parsed, parseErr := parser.ParseFile(token.NewFileSet(), path, nil, 0)
		if parseErr != nil {
			return fmt.Errorf("parse %s: %w", path, parseErr)
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("relative path for %s: %w", path, relErr)
		}

		files = append(files, sourceFile{rel: filepath.ToSlash(rel), file: parsed})

		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, files)

	return files
}

func report(t *testing.T, what string, violations []string) {
	t.Helper()

	if len(violations) > 0 {
		t.Errorf("found %d %s:\n\n%s", len(violations), what, strings.Join(violations, "\n"))
	}
}

func typeSpecs(f *ast.File) []*ast.TypeSpec {
	var specs []*ast.TypeSpec

	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			if typeSpec, isType := spec.(*ast.TypeSpec); isType {
				specs = append(specs, typeSpec)
			}
		}
	}

	return specs
}

func TestNoGrabBagFilenames(t *testing.T) {
	t.Parallel()

	banned := map[string]bool{
		"types.go": true, "utils.go": true, "helpers.go": true,
		"common.go": true, "constants.go": true, "errors.go": true,
	}

	var violations []string

	for _, src := range sources(t) {
		if banned[filepath.Base(src.rel)] {
			violations = append(violations, src.rel+": move each symbol next to the code that uses it")
		}
	}

	report(t, "grab-bag file name(s)", violations)
}

func TestNoGrabBagPackages(t *testing.T) {
	t.Parallel()

	banned := map[string]bool{"util": true, "utils": true, "misc": true, "shared": true, "common": true}

	var violations []string

	for _, src := range sources(t) {
		if banned[src.file.Name.Name] {
			violations = append(violations, fmt.Sprintf("%s: package %q has no domain", src.rel, src.file.Name.Name))
		}
	}

	report(t, "grab-bag package(s)", violations)
}

func TestSmallInterfaces(t *testing.T) {
	t.Parallel()

	var violations []string

	for _, src := range sources(t) {
		for _, spec := range typeSpecs(src.file) {
			iface, ok := spec.Type.(*ast.InterfaceType)
			if !ok {
				continue
			}

			if n := len(iface.Methods.List); n > maxInterfaceMethods {
				violations = append(violations, fmt.Sprintf("%s: interface %s has %d methods (max %d)",
					src.rel, spec.Name.Name, n, maxInterfaceMethods))
			}
		}
	}

	report(t, "fat interface(s)", violations)
}

// stutters reports whether name repeats pkg as a CamelCase prefix, e.g. report.ReportWriter.
func stutters(pkg, name string) bool {
	titled := strings.ToUpper(pkg[:1]) + pkg[1:]

	rest, ok := strings.CutPrefix(name, titled)
	if !ok || rest == "" {
		return false
	}

	first := rune(rest[0])

	return unicode.IsUpper(first) || unicode.IsDigit(first)
}

func TestStutters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pkg, name string
		want      bool
	}{
		{pkg: "report", name: "ReportWriter", want: true},
		{pkg: "pager", name: "Pager", want: false},
		{pkg: "history", name: "Historyfile", want: false},
		{pkg: "aliases", name: "Map", want: false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, stutters(tt.pkg, tt.name), "%s.%s", tt.pkg, tt.name)
	}
}

func TestNoStutteringTypes(t *testing.T) {
	t.Parallel()

	var violations []string

	for _, src := range sources(t) {
		pkg := strings.ToLower(src.file.Name.Name)

		for _, spec := range typeSpecs(src.file) {
			if ast.IsExported(spec.Name.Name) && stutters(pkg, spec.Name.Name) {
				violations = append(violations, fmt.Sprintf("%s: %s.%s stutters", src.rel, pkg, spec.Name.Name))
			}
		}
	}

	report(t, "stuttering type(s)", violations)
}

// TestLayering keeps pkg/ free of internal/ and cmd/, and internal/ free of cmd/.
func TestLayering(t *testing.T) {
	t.Parallel()

	forbidden := map[string][]string{
		"pkg/":      {modulePath + "/internal/", modulePath + "/cmd/"},
		"internal/": {modulePath + "/cmd/"},
	}

	var violations []string

	for _, src := range sources(t) {
		for layer, banned := range forbidden {
			if !strings.HasPrefix(src.rel, layer) {
				continue
			}

			for _, imp := range src.file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)

				for _, prefix := range banned {
					if strings.HasPrefix(path, prefix) {
						violations = append(violations, fmt.Sprintf("%s imports %s", src.rel, path))
					}
				}
			}
		}
	}

	report(t, "layering violation(s)", violations)
}
