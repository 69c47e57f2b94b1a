package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args, resetting flags left over from
// earlier runs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGentableMatchesCheckedInTables(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "charclass", "tables_gen.go"))
	require.NoError(t, err)

	out, err := run(t, "gentable")
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestGentableHex(t *testing.T) {
	out, err := run(t, "gentable", "--format", "hex")
	require.NoError(t, err)
	assert.Contains(t, out, "# pathTable\n0x3fff80000000000\n0x7fffffe87fffffe\n0x0\n0x0\n")
}

func TestGentableToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.go")
	out, err := run(t, "gentable", "-o", path, "--package", "lexer")
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package lexer\n")
}

func TestGentableUnknownFormat(t *testing.T) {
	_, err := run(t, "gentable", "--format", "yaml")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "foo/bar-1.2,3+baz", "foo bar")
	require.NoError(t, err)
	assert.Equal(t,
		`"foo/bar-1.2,3+baz": path "foo/bar-1.2,3+baz", ident "foo"`+"\n"+
			`"foo bar": path "foo" stops at ' ' (offset 3), ident "foo"`+"\n",
		out)
}

func TestFdtestThenParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.ninja")
	_, err := run(t, "fdtest", "-o", path, "--edges", "3", "--sleep", "1")
	require.NoError(t, err)

	out, err := run(t, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully parsed "+path)
	assert.Contains(t, out, "1 rule, 3 build, 1 default, 0 pool")
}

func TestFdtestRejectsZeroEdges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.ninja")
	_, err := run(t, "fdtest", "-o", path, "--edges", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestParseReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ninja")
	bad := filepath.Join(dir, "bad.ninja")
	require.NoError(t, os.WriteFile(good, []byte("rule r\n  command = true\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("build a(b): r\n"), 0o644))

	_, err := run(t, "parse", good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "bad.ninja:1: build a(b): r")
}

func TestParseFollowsIncludes(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.ninja")
	root := filepath.Join(dir, "build.ninja")
	require.NoError(t, os.WriteFile(rules, []byte("rule r\n  command = true\n"), 0o644))
	require.NoError(t, os.WriteFile(root, []byte("include "+rules+"\nbuild a: r\n"), 0o644))

	out, err := run(t, "parse", "--follow", root)
	require.NoError(t, err)
	assert.Contains(t, out, "  "+rules+":\n    1 rule, 0 build")
	assert.Contains(t, out, "  "+root+":\n    0 rule, 1 build, 0 default, 0 pool, 1 include")
}

func TestGentableFlagOverridesBadEnv(t *testing.T) {
	t.Setenv("NINJAPARSE_TABLE_FORMAT", "json")

	_, err := run(t, "gentable")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	out, err := run(t, "gentable", "--format", "hex")
	require.NoError(t, err)
	assert.Contains(t, out, "# identTable\n")
}

func TestGentablePackageWithUnderscore(t *testing.T) {
	out, err := run(t, "gentable", "--package", "char_class")
	require.NoError(t, err)
	assert.Contains(t, out, "package char_class\n")

	_, err = run(t, "gentable", "--package", "char-class")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestUnrelatedSectionDoesNotBlockCommands(t *testing.T) {
	t.Setenv("NINJAPARSE_FIXTURE_OUTPUT", "")
	t.Setenv("NINJAPARSE_FIXTURE_EDGES", "0")

	_, err := run(t, "classify", "foo")
	require.NoError(t, err)

	_, err = run(t, "gentable", "--format", "hex")
	require.NoError(t, err)

	_, err = run(t, "fdtest")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestFdtestFlagsOverrideBadEnv(t *testing.T) {
	t.Setenv("NINJAPARSE_FIXTURE_EDGES", "0")
	path := filepath.Join(t.TempDir(), "build.ninja")

	_, err := run(t, "fdtest", "-o", path, "--edges", "2", "--sleep", "0")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "command = sleep 0; touch $out\nbuild foo0: b\nbuild foo1: b\ndefault foo0 foo1\n")
}

func TestRootSettingsStillChecked(t *testing.T) {
	t.Setenv("NINJAPARSE_JOBS", "0")
	_, err := run(t, "classify", "foo")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestParseVerboseListsVarsSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.ninja")
	require.NoError(t, os.WriteFile(path, []byte("zeta = 1\nalpha = 2\nmid = 3\nbeta = 4\n"), 0o644))

	for i := 0; i < 5; i++ {
		out, err := run(t, "parse", "-v", path)
		require.NoError(t, err)
		assert.Contains(t, out, "      alpha = 2\n      beta = 4\n      mid = 3\n      zeta = 1\n")
	}
}
