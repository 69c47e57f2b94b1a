// File: manifest/parser.go
package manifest

import (
	"strconv"
	"strings"

	"github.com/dangerclosesec/ninjaparse/charclass"
)

// Parser reads statements from a build file. Top-level variable bindings are
// evaluated as they are read and stored in Vars rather than returned.
type Parser struct {
	s    *Scanner
	Vars Vars
}

// NewParser creates a Parser with an empty top-level scope.
func NewParser(s *Scanner) *Parser {
	return NewParserWithVars(s, Vars{})
}

// NewParserWithVars creates a Parser that reads and writes bindings in vars.
func NewParserWithVars(s *Scanner, vars Vars) *Parser {
	return &Parser{
		s:    s,
		Vars: vars,
	}
}

// Scanner returns the underlying scanner, for formatting errors.
func (p *Parser) Scanner() *Scanner {
	return p.s
}

// Read returns the next statement, or nil at end of input.
func (p *Parser) Read() (Statement, error) {
	for {
		switch p.s.Peek() {
		case 0:
			return nil, nil
		case '\n':
			p.s.Next()
		case '#':
			p.skipComment()
		case ' ', '\t':
			return nil, p.s.Errorf("unexpected whitespace")
		default:
			ident, err := p.readIdent()
			if err != nil {
				return nil, err
			}
			p.s.SkipSpaces()

			kind, ok := Keywords[ident]
			if !ok {
				val, err := p.readVardef()
				if err != nil {
					return nil, err
				}
				p.Vars[ident] = val.Evaluate(p.Vars)
				continue
			}

			var stmt Statement
			switch kind {
			case KindRule:
				stmt, err = p.readRule()
			case KindBuild:
				stmt, err = p.readBuild()
			case KindDefault:
				stmt, err = p.readDefault()
			case KindPool:
				stmt, err = p.readPool()
			case KindInclude:
				path, err := p.expectPath()
				if err != nil {
					return nil, err
				}
				return &Include{Path: path}, nil
			case KindSubninja:
				path, err := p.expectPath()
				if err != nil {
					return nil, err
				}
				return &Subninja{Path: path}, nil
			}
			if err != nil {
				return nil, err
			}
			return stmt, nil
		}
	}
}

// ReadAll reads statements until end of input.
func (p *Parser) ReadAll() ([]Statement, error) {
	var stmts []Statement
	for {
		stmt, err := p.Read()
		if err != nil {
			return stmts, err
		}
		if stmt == nil {
			return stmts, nil
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) readVardef() (EvalString, error) {
	p.s.SkipSpaces()
	if err := p.s.Expect('='); err != nil {
		return nil, err
	}
	p.s.SkipSpaces()
	return p.readEval()
}

func (p *Parser) readScopedVars() (LazyVars, error) {
	var vars LazyVars
	for p.s.Peek() == ' ' {
		p.s.SkipSpaces()
		name, err := p.readIdent()
		if err != nil {
			return nil, err
		}
		p.s.SkipSpaces()
		val, err := p.readVardef()
		if err != nil {
			return nil, err
		}
		vars = append(vars, Binding{Name: name, Value: val})
	}
	return vars, nil
}

func (p *Parser) readRule() (*Rule, error) {
	name, err := p.readIdent()
	if err != nil {
		return nil, err
	}
	if err := p.s.Expect('\n'); err != nil {
		return nil, err
	}
	vars, err := p.readScopedVars()
	if err != nil {
		return nil, err
	}
	return &Rule{Name: name, Vars: vars}, nil
}

func (p *Parser) readPool() (*Pool, error) {
	name, err := p.readIdent()
	if err != nil {
		return nil, err
	}
	if err := p.s.Expect('\n'); err != nil {
		return nil, err
	}
	vars, err := p.readScopedVars()
	if err != nil {
		return nil, err
	}

	pool := &Pool{Name: name}
	for _, b := range vars {
		if b.Name != "depth" {
			return nil, p.s.Errorf("unexpected pool attribute %q", b.Name)
		}
		depth, err := strconv.Atoi(b.Value.Evaluate())
		if err != nil {
			return nil, p.s.Errorf("pool depth: %v", err)
		}
		if depth < 0 {
			return nil, p.s.Errorf("pool depth: %d is negative", depth)
		}
		pool.Depth = depth
	}
	return pool, nil
}

// readPaths appends paths separated by spaces until one fails to scan.
func (p *Parser) readPaths(paths []string) ([]string, error) {
	for {
		p.s.SkipSpaces()
		path, ok, err := p.readPath()
		if err != nil {
			return nil, err
		}
		if !ok {
			return paths, nil
		}
		paths = append(paths, path)
	}
}

func (p *Parser) readBuild() (*Build, error) {
	line := p.s.Line()

	outs, err := p.readPaths(nil)
	if err != nil {
		return nil, err
	}
	explicitOuts := len(outs)

	if p.s.Peek() == '|' {
		p.s.Next()
		if outs, err = p.readPaths(outs); err != nil {
			return nil, err
		}
	}

	if err := p.s.Expect(':'); err != nil {
		return nil, err
	}
	p.s.SkipSpaces()
	rule, err := p.readIdent()
	if err != nil {
		return nil, err
	}

	ins, err := p.readPaths(nil)
	if err != nil {
		return nil, err
	}
	explicitIns := len(ins)

	if p.s.Peek() == '|' {
		p.s.Next()
		if p.s.Peek() == '|' {
			p.s.Back()
		} else if ins, err = p.readPaths(ins); err != nil {
			return nil, err
		}
	}
	implicitIns := len(ins) - explicitIns

	if p.s.Peek() == '|' {
		p.s.Next()
		if err := p.s.Expect('|'); err != nil {
			return nil, err
		}
		if ins, err = p.readPaths(ins); err != nil {
			return nil, err
		}
	}
	orderOnlyIns := len(ins) - implicitIns - explicitIns

	if err := p.s.Expect('\n'); err != nil {
		return nil, err
	}
	vars, err := p.readScopedVars()
	if err != nil {
		return nil, err
	}

	return &Build{
		Rule:         rule,
		Line:         line,
		Outs:         outs,
		ExplicitOuts: explicitOuts,
		Ins:          ins,
		ExplicitIns:  explicitIns,
		ImplicitIns:  implicitIns,
		OrderOnlyIns: orderOnlyIns,
		Vars:         vars,
	}, nil
}

func (p *Parser) readDefault() (*Default, error) {
	var paths []string
	for {
		path, ok, err := p.readPath()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		paths = append(paths, path)
		p.s.SkipSpaces()
	}
	if err := p.s.Expect('\n'); err != nil {
		return nil, err
	}
	return &Default{Paths: paths}, nil
}

func (p *Parser) skipComment() {
	for {
		switch p.s.Read() {
		case 0:
			p.s.Back()
			return
		case '\n':
			return
		}
	}
}

func (p *Parser) readIdent() (string, error) {
	start := p.s.Ofs()
	for charclass.IsIdent(p.s.Peek()) {
		p.s.Next()
	}
	end := p.s.Ofs()
	if end == start {
		return "", p.s.Errorf("failed to scan ident")
	}
	return p.s.Slice(start, end), nil
}

func (p *Parser) readEval() (EvalString, error) {
	parts := make(EvalString, 0, 1)
	ofs := p.s.Ofs()
	for {
		switch p.s.Read() {
		case 0:
			p.s.Back()
			return nil, p.s.Errorf("unexpected EOF")
		case '\n':
			if end := p.s.Ofs() - 1; end > ofs {
				parts = append(parts, EvalPart{Kind: EvalLiteral, Text: p.s.Slice(ofs, end)})
			}
			return parts, nil
		case '$':
			if end := p.s.Ofs() - 1; end > ofs {
				parts = append(parts, EvalPart{Kind: EvalLiteral, Text: p.s.Slice(ofs, end)})
			}
			part, err := p.readEscape()
			if err != nil {
				return nil, err
			}
			if part.Kind != EvalLiteral || part.Text != "" {
				parts = append(parts, part)
			}
			ofs = p.s.Ofs()
		}
	}
}

func (p *Parser) expectPath() (string, error) {
	path, ok, err := p.readPath()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", p.s.Errorf("expected path")
	}
	return path, nil
}

// readPath scans a bare path, expanding escapes against the top-level scope.
// It reports false if no path was present.
func (p *Parser) readPath() (string, bool, error) {
	var path strings.Builder
	for {
		c := p.s.Read()
		switch {
		case c == 0:
			p.s.Back()
			return "", false, p.s.Errorf("unexpected EOF")
		case c == '$':
			part, err := p.readEscape()
			if err != nil {
				return "", false, err
			}
			if part.Kind == EvalLiteral {
				path.WriteString(part.Text)
			} else if v, ok := p.Vars[part.Text]; ok {
				path.WriteString(v)
			}
		case c == ':' || c == '|' || c == ' ' || c == '\n':
			p.s.Back()
			return path.String(), path.Len() > 0, nil
		case charclass.IsAllowed(c):
			path.WriteByte(c)
		default:
			p.s.Back()
			return "", false, p.s.Errorf("unexpected character %q", rune(c))
		}
	}
}

func (p *Parser) readEscape() (EvalPart, error) {
	switch p.s.Peek() {
	case '\n':
		p.s.Next()
		p.s.SkipSpaces()
		return EvalPart{Kind: EvalLiteral}, nil
	case ' ', '$', ':':
		p.s.Next()
		return EvalPart{Kind: EvalLiteral, Text: p.s.Slice(p.s.Ofs()-1, p.s.Ofs())}, nil
	case '{':
		p.s.Next()
		start := p.s.Ofs()
		for {
			switch p.s.Read() {
			case 0:
				p.s.Back()
				return EvalPart{}, p.s.Errorf("unexpected EOF")
			case '}':
				return EvalPart{Kind: EvalVarRef, Text: p.s.Slice(start, p.s.Ofs()-1)}, nil
			}
		}
	default:
		ident, err := p.readIdent()
		if err != nil {
			return EvalPart{}, err
		}
		return EvalPart{Kind: EvalVarRef, Text: ident}, nil
	}
}
