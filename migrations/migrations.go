// Package migrations embeds the storefront schema.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

var createObject = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+|NULL_FILTERED\s+)*(?:TABLE|INDEX)\s+(\w+)`)

// Migration is one schema file split into DDL statements.
type Migration struct {
	Name       string
	Statements []string
}

// Objects lists the tables and indexes the statements create.
func (m Migration) Objects() []string {
	var names []string
	for _, stmt := range m.Statements {
		if match := createObject.FindStringSubmatch(stmt); match != nil {
			names = append(names, match[1])
		}
	}
	return names
}

// AppliedTo reports whether every object the migration creates is already
// declared by existing, the DDL of a live database.
func (m Migration) AppliedTo(existing []string) bool {
	declared := make(map[string]bool)
	for _, name := range (Migration{Statements: existing}).Objects() {
		declared[strings.ToLower(name)] = true
	}

	objects := m.Objects()
	if len(objects) == 0 {
		return false
	}
	for _, name := range objects {
		if !declared[strings.ToLower(name)] {
			return false
		}
	}
	return true
}

// Load returns the embedded migrations ordered by file name.
func Load() ([]Migration, error) {
	return load(files)
}

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		stmts := SplitStatements(string(content))
		if len(stmts) == 0 {
			continue
		}
		migrations = append(migrations, Migration{Name: name, Statements: stmts})
	}
	return migrations, nil
}

// SplitStatements drops comment lines and splits on semicolons.
func SplitStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
