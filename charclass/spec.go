package charclass

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
)

// Textual specs of the generated tables. Each token is either a single byte
// or a two-byte inclusive range such as "az".
const (
	IdentSpec = "az AZ 09 _ - ."
	PathSpec  = "az AZ 09 _ - . / , +"
)

// Range is an inclusive run of byte values. A literal has Lo == Hi.
type Range struct {
	Lo, Hi byte
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return string(rune(r.Lo))
	}
	return string([]byte{r.Lo, r.Hi})
}

func (r Range) validate() error {
	if r.Lo >= utf8.RuneSelf || r.Hi >= utf8.RuneSelf {
		return fmt.Errorf("%w: non-ASCII byte in %q", domain.ErrInvalidSpec, r.String())
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("%w: inverted range %q", domain.ErrInvalidSpec, r.String())
	}
	return nil
}

// Spec is an ordered list of ranges making up an allowed set.
type Spec []Range

func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// ParseSpec parses a whitespace separated list of literals and ranges.
func ParseSpec(text string) (Spec, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty spec", domain.ErrInvalidSpec)
	}

	spec := make(Spec, 0, len(tokens))
	for _, tok := range tokens {
		var r Range
		switch len(tok) {
		case 1:
			r = Range{Lo: tok[0], Hi: tok[0]}
		case 2:
			r = Range{Lo: tok[0], Hi: tok[1]}
		default:
			return nil, fmt.Errorf("%w: token %q is neither a byte nor a range", domain.ErrInvalidSpec, tok)
		}
		if err := r.validate(); err != nil {
			return nil, err
		}
		spec = append(spec, r)
	}
	return spec, nil
}

// Build packs spec into a Table. It fails without returning a partial table
// if any range is malformed.
func Build(spec Spec) (Table, error) {
	if len(spec) == 0 {
		return Table{}, fmt.Errorf("%w: empty spec", domain.ErrInvalidSpec)
	}

	var t Table
	for _, r := range spec {
		if err := r.validate(); err != nil {
			return Table{}, err
		}
		for c := int(r.Lo); c <= int(r.Hi); c++ {
			t[c>>6] |= 1 << (c & 63)
		}
	}
	return t, nil
}

// BuildString parses text and packs it into a Table.
func BuildString(text string) (Table, error) {
	spec, err := ParseSpec(text)
	if err != nil {
		return Table{}, err
	}
	return Build(spec)
}

// mustBuild is BuildString for specs known to be valid.
func mustBuild(text string) Table {
	t, err := BuildString(text)
	if err != nil {
		panic(err)
	}
	return t
}
