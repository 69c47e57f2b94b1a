// File: manifest/parse.go
package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
)

// Manifest is one parsed build file.
type Manifest struct {
	Source     string
	Statements []Statement
	// Vars is the top-level scope after the whole file was read.
	Vars Vars
}

// Count returns how many statements of kind the manifest holds.
func (m *Manifest) Count(kind StatementKind) int {
	n := 0
	for _, stmt := range m.Statements {
		if stmt.Kind() == kind {
			n++
		}
	}
	return n
}

// FileError is a parse error with its rendered source context.
type FileError struct {
	Filename string
	Err      *ParseError
	Detail   string
}

func (e *FileError) Error() string {
	return e.Detail
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Parse parses content with a fresh top-level scope.
func Parse(filename string, content []byte) (*Manifest, error) {
	return parseWithVars(filename, content, Vars{})
}

func parseWithVars(filename string, content []byte, vars Vars) (*Manifest, error) {
	parser := NewParserWithVars(NewScanner(content), vars)
	stmts, err := parser.ReadAll()
	m := &Manifest{
		Source:     filename,
		Statements: stmts,
		Vars:       parser.Vars,
	}
	if err != nil {
		return m, wrapParseError(parser, filename, err)
	}
	return m, nil
}

func wrapParseError(p *Parser, filename string, err error) error {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return err
	}
	return &FileError{
		Filename: filename,
		Err:      perr,
		Detail:   p.Scanner().FormatParseError(filename, perr),
	}
}

// ParseFile parses a build file from disk
func ParseFile(filePath string) (*Manifest, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(filePath, content)
}

// Loader reads build files by path.
type Loader interface {
	ReadFile(path string) ([]byte, error)
}

// OSLoader reads from the local filesystem.
type OSLoader struct{}

// ReadFile implements Loader.
func (OSLoader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Load parses path and every file it includes or subninjas, depth first.
// Files are returned in the order they were opened. An include shares the
// including file's scope; a subninja gets a copy of it.
func Load(ctx context.Context, loader Loader, path string, logger *slog.Logger) ([]*Manifest, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &load{
		ctx:    ctx,
		loader: loader,
		logger: logger,
		active: map[string]bool{},
	}
	if err := l.file(path, Vars{}); err != nil {
		return l.files, err
	}
	return l.files, nil
}

type load struct {
	ctx    context.Context
	loader Loader
	logger *slog.Logger
	active map[string]bool
	files  []*Manifest
}

func (l *load) file(path string, vars Vars) error {
	if err := l.ctx.Err(); err != nil {
		return err
	}
	if l.active[path] {
		return fmt.Errorf("%w: %s", domain.ErrIncludeCycle, path)
	}
	l.active[path] = true
	defer delete(l.active, path)

	content, err := l.loader.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	l.logger.Debug("loading manifest", "path", path, "bytes", len(content))

	parser := NewParserWithVars(NewScanner(content), vars)
	m := &Manifest{Source: path, Vars: vars}
	l.files = append(l.files, m)

	for {
		stmt, err := parser.Read()
		if err != nil {
			return wrapParseError(parser, path, err)
		}
		if stmt == nil {
			return nil
		}
		m.Statements = append(m.Statements, stmt)

		switch s := stmt.(type) {
		case *Include:
			if err := l.file(s.Path, vars); err != nil {
				return err
			}
		case *Subninja:
			if err := l.file(s.Path, vars.clone()); err != nil {
				return err
			}
		}
	}
}
