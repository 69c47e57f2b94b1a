package manifest_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
	"github.com/dangerclosesec/ninjaparse/internal/mocks"
	"github.com/dangerclosesec/ninjaparse/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadFollowsIncludes(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	gomock.InOrder(
		loader.EXPECT().ReadFile("build.ninja").Return([]byte(
			"include rules.ninja\nsubninja sub.ninja\nbuild out: cc in\n"), nil),
		loader.EXPECT().ReadFile("rules.ninja").Return([]byte(
			"cflags = -O2\nrule cc\n  command = cc $cflags\n"), nil),
		loader.EXPECT().ReadFile("sub.ninja").Return([]byte(
			"cflags = -O0\nbuild sub/out: cc sub/in\n"), nil),
	)

	files, err := manifest.Load(context.Background(), loader, "build.ninja", discard)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "build.ninja", files[0].Source)
	assert.Equal(t, "rules.ninja", files[1].Source)
	assert.Equal(t, "sub.ninja", files[2].Source)

	assert.Len(t, files[0].Statements, 3)
	assert.Equal(t, "-O2", files[0].Vars["cflags"], "include shares scope")
	assert.Equal(t, "-O0", files[2].Vars["cflags"], "subninja gets its own scope")
}

func TestLoadDetectsCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().ReadFile("a.ninja").Return([]byte("include b.ninja\n"), nil).Times(1)
	loader.EXPECT().ReadFile("b.ninja").Return([]byte("include a.ninja\n"), nil).Times(1)

	_, err := manifest.Load(context.Background(), loader, "a.ninja", discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIncludeCycle)
	assert.Contains(t, err.Error(), "a.ninja")
}

func TestLoadAllowsRepeatedIncludes(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().ReadFile("build.ninja").Return([]byte("include x.ninja\ninclude x.ninja\n"), nil)
	loader.EXPECT().ReadFile("x.ninja").Return([]byte("v = 1\n"), nil).Times(2)

	files, err := manifest.Load(context.Background(), loader, "build.ninja", nil)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestLoadReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().ReadFile("build.ninja").Return([]byte("subninja gone.ninja\n"), nil)
	loader.EXPECT().ReadFile("gone.ninja").Return(nil, os.ErrNotExist)

	_, err := manifest.Load(context.Background(), loader, "build.ninja", discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "gone.ninja")
}

func TestLoadParseErrorNamesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().ReadFile("build.ninja").Return([]byte("include rules.ninja\n"), nil)
	loader.EXPECT().ReadFile("rules.ninja").Return([]byte("rule\n"), nil)

	_, err := manifest.Load(context.Background(), loader, "build.ninja", discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "rules.ninja:1: rule")
}

func TestLoadCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manifest.Load(ctx, loader, "build.ninja", discard)
	assert.ErrorIs(t, err, context.Canceled)
}
