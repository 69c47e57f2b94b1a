// File: manifest/statement.go
package manifest

// StatementKind identifies a top-level build file statement
type StatementKind int

// Statement kinds
const (
	KindRule StatementKind = iota
	KindBuild
	KindDefault
	KindInclude
	KindSubninja
	KindPool
)

var kindNames = map[StatementKind]string{
	KindRule:     "rule",
	KindBuild:    "build",
	KindDefault:  "default",
	KindInclude:  "include",
	KindSubninja: "subninja",
	KindPool:     "pool",
}

func (k StatementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Keywords maps keyword strings to statement kinds
var Keywords = map[string]StatementKind{
	"rule":     KindRule,
	"build":    KindBuild,
	"default":  KindDefault,
	"include":  KindInclude,
	"subninja": KindSubninja,
	"pool":     KindPool,
}

// Statement is anything Parser.Read returns
type Statement interface {
	Kind() StatementKind
}

// Rule is a `rule` block
type Rule struct {
	Name string
	Vars LazyVars
}

// Build is a `build` edge. Outs and Ins are partitioned by the counts:
// Outs[:ExplicitOuts] are explicit, the rest implicit. Ins holds explicit,
// then implicit, then order-only inputs.
type Build struct {
	Rule         string
	Line         int
	Outs         []string
	ExplicitOuts int
	Ins          []string
	ExplicitIns  int
	ImplicitIns  int
	OrderOnlyIns int
	Vars         LazyVars
}

// Default lists the default targets
type Default struct {
	Paths []string
}

// Include pulls another file into the current scope
type Include struct {
	Path string
}

// Subninja pulls another file into a child scope
type Subninja struct {
	Path string
}

// Pool declares a concurrency pool
type Pool struct {
	Name  string
	Depth int
}

func (*Rule) Kind() StatementKind     { return KindRule }
func (*Build) Kind() StatementKind    { return KindBuild }
func (*Default) Kind() StatementKind  { return KindDefault }
func (*Include) Kind() StatementKind  { return KindInclude }
func (*Subninja) Kind() StatementKind { return KindSubninja }
func (*Pool) Kind() StatementKind     { return KindPool }

// ExplicitIn returns the explicit inputs of b.
func (b *Build) ExplicitIn() []string {
	return b.Ins[:b.ExplicitIns]
}

// ImplicitIn returns the implicit inputs of b.
func (b *Build) ImplicitIn() []string {
	return b.Ins[b.ExplicitIns : b.ExplicitIns+b.ImplicitIns]
}

// OrderOnlyIn returns the order-only inputs of b.
func (b *Build) OrderOnlyIn() []string {
	return b.Ins[b.ExplicitIns+b.ImplicitIns:]
}
