// Command sqllint verifies that every inline SQL constant carries the
// audit marker the query runner strips and logs. A query without the
// marker cannot be correlated with slow-query logs, so CI fails on it.
//
// Usage: sqllint [dir|file ...]  (defaults to the current directory)
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const markerPrefix = "--sql "

type finding struct {
	pos   token.Position
	ident string
	why   string
}

func main() {
	flag.Parse()
	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var findings []finding
	for _, root := range roots {
		fs, err := collectGoFiles(root)
		if err != nil {
			fatal(err)
		}
		for _, path := range fs {
			got, err := lint(path)
			if err != nil {
				fatal(err)
			}
			findings = append(findings, got...)
		}
	}

	if len(findings) == 0 {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", f.pos, f.ident, f.why)
	}
	fmt.Fprintf(os.Stderr, "sqllint: %d unmarked quer%s\n", len(findings), plural(len(findings)))
	os.Exit(1)
}

func collectGoFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if filepath.Ext(root) != ".go" {
			return nil, nil
		}
		return []string{root}, nil
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) == ".go" && !strings.HasSuffix(name, "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// lint flags every Q-prefixed string constant whose first line is not a
// well-formed marker, plus any other constant that looks like SQL.
func lint(path string) ([]finding, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, err
	}

	var findings []finding
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			lit, ok := value.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			text, err := unquote(lit.Value)
			if err != nil {
				continue
			}
			name := ""
			if i < len(spec.Names) && spec.Names[i] != nil {
				name = spec.Names[i].Name
			}
			if !strings.HasPrefix(name, "Q") && !looksLikeSQL(text) {
				continue
			}
			if why, ok := checkMarker(text); !ok {
				findings = append(findings, finding{
					pos:   fset.Position(lit.Pos()),
					ident: name,
					why:   why,
				})
			}
		}
		return true
	})
	return findings, nil
}

func checkMarker(text string) (string, bool) {
	line := firstLine(text)
	if !strings.HasPrefix(line, markerPrefix) {
		return "first line must be a --sql <uuid> marker", false
	}
	id := strings.TrimPrefix(line, markerPrefix)
	if !validUUID(id) {
		return fmt.Sprintf("marker id %q is not a UUID", id), false
	}
	return "", true
}

func looksLikeSQL(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range []string{"select ", "insert into", "update ", "delete from", "with "} {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

func validUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
				return false
			}
		}
	}
	return true
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimRight(s, " \t\r")
}

func unquote(raw string) (string, error) {
	if strings.HasPrefix(raw, "`") {
		return strings.Trim(raw, "`"), nil
	}
	return strconv.Unquote(raw)
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
	os.Exit(1)
}
