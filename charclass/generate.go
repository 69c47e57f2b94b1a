package charclass

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
)

// Named is a table to emit as a package-level variable.
type Named struct {
	// Var is the Go identifier of the variable.
	Var string
	// Doc is written as the variable's comment.
	Doc string
	// Spec is the textual allowed set, see ParseSpec.
	Spec string
}

// DefaultTables are the tables embedded in this package.
var DefaultTables = []Named{
	{Var: "pathTable", Doc: "bytes allowed in a bare path", Spec: PathSpec},
	{Var: "identTable", Doc: "bytes allowed in an identifier", Spec: IdentSpec},
}

// Generate writes a Go source file declaring each table in package pkg.
// Every spec is built before anything is written, so a bad spec leaves w
// untouched. The file is constrained to !bootstrap builds.
func Generate(w io.Writer, pkg string, tables ...Named) error {
	built := make([]Table, len(tables))
	for i, n := range tables {
		t, err := BuildString(n.Spec)
		if err != nil {
			return fmt.Errorf("table %s: %w", n.Var, err)
		}
		built[i] = t
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by ninjaparse gentable; DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "//go:build !bootstrap")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "package %s\n", pkg)
	for i, n := range tables {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "// %s: %s\n", n.Var, n.Doc)
		fmt.Fprintf(&buf, "// %s\n", n.Spec)
		fmt.Fprintf(&buf, "var %s = Table{\n", n.Var)
		for _, word := range built[i] {
			fmt.Fprintf(&buf, "\t0x%016x,\n", word)
		}
		fmt.Fprintln(&buf, "}")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteHex writes the words of each table as hex, one per line, lowest byte
// values first.
func WriteHex(w io.Writer, tables ...Named) error {
	built := make([]Table, len(tables))
	for i, n := range tables {
		t, err := BuildString(n.Spec)
		if err != nil {
			return fmt.Errorf("table %s: %w", n.Var, err)
		}
		built[i] = t
	}
	for i, t := range built {
		if len(built) > 1 {
			if _, err := fmt.Fprintf(w, "# %s\n", tables[i].Var); err != nil {
				return err
			}
		}
		for _, word := range t.Words() {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
	}
	return nil
}
