// Package charclass classifies bytes that may appear unescaped in bare
// build-file tokens.
//
// A Table packs one flag per byte value into four 64-bit words. Word i covers
// bytes 64*i through 64*i+63, least-significant bit first. The package tables
// are generated by `ninjaparse gentable` and embedded as literals in
// tables_gen.go. Builds tagged bootstrap skip that file and compute the
// tables from their specs, which is how the generator itself is built.
package charclass

import "fmt"

//go:generate go run -tags bootstrap ../cmd/ninjaparse gentable -o tables_gen.go

// Table is a packed set of byte values.
type Table [4]uint64

// Contains reports whether b is in the table.
func (t Table) Contains(b byte) bool {
	return t[b>>6]&(1<<(b&63)) != 0
}

// Words returns the table words as hex literals, lowest byte values first.
func (t Table) Words() []string {
	words := make([]string, len(t))
	for i, w := range t {
		words[i] = fmt.Sprintf("%#x", w)
	}
	return words
}

// PathTable returns a copy of the bare path table.
func PathTable() Table {
	return pathTable
}

// IdentTable returns a copy of the identifier table.
func IdentTable() Table {
	return identTable
}

// IsAllowed reports whether b may appear in a bare path token.
func IsAllowed(b byte) bool {
	return pathTable.Contains(b)
}

// IsIdent reports whether b may appear in an identifier: a rule, pool or
// variable name.
func IsIdent(b byte) bool {
	return identTable.Contains(b)
}

// Span returns the length of the leading run of buf that is a bare path.
func Span(buf []byte) int {
	for i, b := range buf {
		if !pathTable.Contains(b) {
			return i
		}
	}
	return len(buf)
}

// IdentSpan returns the length of the leading run of buf that is an
// identifier.
func IdentSpan(buf []byte) int {
	for i, b := range buf {
		if !identTable.Contains(b) {
			return i
		}
	}
	return len(buf)
}
