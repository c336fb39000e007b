package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_EnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	s := NewStorage(dir)

	require.NoError(t, s.EnsureDir())
	require.NoError(t, s.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStorage_SaveLoadList(t *testing.T) {
	ctx := context.Background()
	s := NewStorage(t.TempDir())

	path, err := s.Save(ctx, "b.png", strings.NewReader("bbb"))
	require.NoError(t, err)
	assert.Equal(t, s.Path("b.png"), path)

	_, err = s.Save(ctx, "a.png", strings.NewReader("aaa"))
	require.NoError(t, err)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.png", entries[0].Name())
	assert.Equal(t, "b.png", entries[1].Name())

	r, err := s.Load(ctx, "b.png")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "bbb", string(data))
}

func TestStorage_ErrorsAreFilesystemErrors(t *testing.T) {
	ctx := context.Background()
	s := NewStorage(filepath.Join(t.TempDir(), "missing"))

	_, err := s.List(ctx)
	assert.True(t, errors.Is(err, ErrFilesystem))

	_, err = s.Load(ctx, "nope.png")
	assert.True(t, errors.Is(err, ErrFilesystem))

	_, err = s.Save(ctx, "x.png", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrFilesystem))
}

func TestStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStorage(t.TempDir())
	_, err := s.Save(ctx, "x.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(s.Path("x.png"))
	assert.True(t, os.IsNotExist(err))
}
