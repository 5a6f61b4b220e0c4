package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_CommitThenOpen(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(filepath.Join(t.TempDir(), "Uploads"))
	require.NoError(t, err)

	w, err := s.Create(ctx, "payroll.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("id,salary\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("1,100\n"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(s.Dir(), "payroll.csv"))
	assert.True(t, os.IsNotExist(err), "file must not be visible before commit")

	require.NoError(t, w.Commit())

	rc, info, err := s.Open(ctx, "payroll.csv")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "id,salary\n1,100\n", string(got))
	assert.Equal(t, FileInfo{Name: "payroll.csv", Size: int64(len(got))}, info)
}

func TestDiskStore_AbortLeavesNothing(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	w, err := s.Create(ctx, "x.bin")
	require.NoError(t, err)
	_, _ = w.Write([]byte("partial"))
	require.NoError(t, w.Abort())
	require.NoError(t, w.Abort())

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Error(t, w.Commit())
}

func TestDiskStore_CommitReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, body := range []string{"first version", "second"} {
		w, err := s.Create(ctx, "p.txt")
		require.NoError(t, err)
		_, err = io.WriteString(w, body)
		require.NoError(t, err)
		require.NoError(t, w.Commit())
	}

	got, err := os.ReadFile(filepath.Join(s.Dir(), "p.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestDiskStore_StripsDirectories(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewDiskStore(filepath.Join(root, "Uploads"))
	require.NoError(t, err)

	w, err := s.Create(ctx, "../../escape.txt")
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	_, err = os.Stat(filepath.Join(s.Dir(), "escape.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_Errors(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Open(ctx, "missing.txt")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "sub"), 0o770))
	_, _, err = s.Open(ctx, "sub")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Create(ctx, "..")
	assert.ErrorIs(t, err, common.ErrorInvalidFileName)

	_, _, err = s.Open(ctx, "  ")
	assert.ErrorIs(t, err, common.ErrorInvalidFileName)
}
