// File: manifest/scanner.go
package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
)

// ParseError is a syntax error at a byte offset of the scanned input.
type ParseError struct {
	Msg string
	Ofs int
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return domain.ErrParse
}

// Scanner walks a build file byte by byte. The input is terminated by a NUL
// sentinel so lookahead never needs a bounds check.
type Scanner struct {
	buf  []byte
	ofs  int // current position in buf
	line int // 1-based line of ofs
}

// NewScanner creates a Scanner over a copy of input.
func NewScanner(input []byte) *Scanner {
	buf := make([]byte, len(input)+1)
	copy(buf, input)
	return &Scanner{
		buf:  buf,
		line: 1,
	}
}

// Ofs returns the current byte offset.
func (s *Scanner) Ofs() int {
	return s.ofs
}

// Line returns the current line number.
func (s *Scanner) Line() int {
	return s.line
}

// Slice returns the input between two offsets.
func (s *Scanner) Slice(start, end int) string {
	return string(s.buf[start:end])
}

// Peek returns the current byte without consuming it. It returns 0 at EOF.
func (s *Scanner) Peek() byte {
	return s.buf[s.ofs]
}

// Next advances past the current byte.
func (s *Scanner) Next() {
	if s.ofs == len(s.buf) {
		panic("scanned past end")
	}
	if s.Peek() == '\n' {
		s.line++
	}
	s.ofs++
}

// Back moves one byte backwards.
func (s *Scanner) Back() {
	if s.ofs == 0 {
		panic("back at start")
	}
	s.ofs--
	if s.Peek() == '\n' {
		s.line--
	}
}

// Read consumes and returns the current byte.
func (s *Scanner) Read() byte {
	c := s.Peek()
	s.Next()
	return c
}

// Skip consumes ch if it is the current byte.
func (s *Scanner) Skip(ch byte) bool {
	if s.Peek() == ch {
		s.Next()
		return true
	}
	return false
}

// SkipSpaces consumes a run of spaces. Tabs are not skipped.
func (s *Scanner) SkipSpaces() {
	for s.Skip(' ') {
	}
}

// Expect consumes ch or fails without consuming anything.
func (s *Scanner) Expect(ch byte) error {
	r := s.Read()
	if r != ch {
		s.Back()
		return s.Errorf("expected %q, got %q", rune(ch), rune(r))
	}
	return nil
}

// Errorf returns a ParseError at the current offset.
func (s *Scanner) Errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf(format, args...),
		Ofs: s.ofs,
	}
}

// FormatParseError renders err with the offending line and a caret under
// the failing column.
func (s *Scanner) FormatParseError(filename string, err *ParseError) string {
	input := s.buf[:len(s.buf)-1]
	ofs := 0
	for lineNumber, line := range bytes.Split(input, []byte("\n")) {
		if ofs+len(line) >= err.Ofs {
			var msg strings.Builder
			msg.WriteString("parse error: ")
			msg.WriteString(err.Msg)
			msg.WriteByte('\n')

			prefix := fmt.Sprintf("%s:%d: ", filename, lineNumber+1)
			msg.WriteString(prefix)

			context := string(line)
			col := err.Ofs - ofs
			if col > 40 {
				// Trim beginning of line to fit it on screen.
				msg.WriteString("...")
				context = context[col-20:]
				col = 3 + 20
			}
			if len(context) > 40 {
				msg.WriteString(context[:40])
				msg.WriteString("...")
			} else {
				msg.WriteString(context)
			}
			msg.WriteByte('\n')

			msg.WriteString(strings.Repeat(" ", len(prefix)+col))
			msg.WriteString("^\n")
			return msg.String()
		}
		ofs += len(line) + 1
	}
	return fmt.Sprintf("parse error: %s\n%s: at offset %d\n", err.Msg, filename, err.Ofs)
}
