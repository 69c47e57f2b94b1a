//go:build bootstrap

package charclass

var (
	pathTable  = mustBuild(PathSpec)
	identTable = mustBuild(IdentSpec)
)
