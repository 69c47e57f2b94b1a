package fixture_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
	"github.com/dangerclosesec/ninjaparse/internal/fixture"
	"github.com/dangerclosesec/ninjaparse/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSmall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixture.Write(&buf, fixture.Options{Edges: 2, Sleep: 1}))

	want := "rule b\n" +
		"    command = sleep 1; touch $out\n" +
		"build foo0: b\n" +
		"build foo1: b\n" +
		"default foo0 foo1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteParses(t *testing.T) {
	var buf bytes.Buffer
	opts := fixture.DefaultOptions()
	require.NoError(t, fixture.Write(&buf, opts))

	m, err := manifest.Parse("build.ninja", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count(manifest.KindRule))
	assert.Equal(t, opts.Edges, m.Count(manifest.KindBuild))
	require.Equal(t, 1, m.Count(manifest.KindDefault))

	def := m.Statements[len(m.Statements)-1].(*manifest.Default)
	assert.Len(t, def.Paths, opts.Edges)
	assert.Equal(t, "foo999", def.Paths[999])

	rule := m.Statements[0].(*manifest.Rule)
	cmd, ok := rule.Vars.Get("command")
	require.True(t, ok)
	assert.Equal(t, "sleep 300; touch foo0", cmd.Evaluate(manifest.Vars{"out": "foo0"}))
}

func TestWriteRejectsBadOptions(t *testing.T) {
	var buf bytes.Buffer
	err := fixture.Write(&buf, fixture.Options{Edges: 0, Sleep: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	err = fixture.Write(&buf, fixture.Options{Edges: 1, Sleep: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.ninja")
	require.NoError(t, fixture.WriteFile(path, fixture.Options{Edges: 3, Sleep: 0}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "default foo0 foo1 foo2\n")
}

func TestWriteFileKeepsExistingFileOnBadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.ninja")
	const existing = "rule keep\n  command = true\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	err := fixture.WriteFile(path, fixture.Options{Edges: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))

	err = fixture.WriteFile(path, fixture.Options{Edges: 1, Sleep: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, fixture.DefaultOptions().Validate())
	assert.ErrorIs(t, fixture.Options{Edges: 0}.Validate(), domain.ErrInvalidConfig)
	assert.ErrorIs(t, fixture.Options{Edges: 1, Sleep: -1}.Validate(), domain.ErrInvalidConfig)
}
