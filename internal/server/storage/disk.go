package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/filex"
	"github.com/google/uuid"
)

// DiskStore keeps files in a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir on demand.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{dir: abs}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// Create streams into a hidden temporary file through a ChunkSize buffer and
// renames it over the final name on Commit.
func (s *DiskStore) Create(ctx context.Context, name string) (Writer, error) {
	name, err := filex.SafeName(name)
	if err != nil {
		return nil, err
	}

	tmp := filepath.Join(s.dir, "."+uuid.NewString()+".part")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &diskWriter{
		f:     f,
		buf:   bufio.NewWriterSize(f, common.ChunkSize),
		tmp:   tmp,
		final: filepath.Join(s.dir, name),
	}, nil
}

func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, FileInfo, error) {
	name, err := filex.SafeName(name)
	if err != nil {
		return nil, FileInfo{}, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, FileInfo{}, fmt.Errorf("%s: %w", name, common.ErrorNotFound)
		}
		return nil, FileInfo{}, fmt.Errorf("open %s: %w", name, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, FileInfo{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, FileInfo{}, fmt.Errorf("%s: %w", name, common.ErrorNotFound)
	}

	return f, FileInfo{Name: name, Size: fi.Size()}, nil
}

type diskWriter struct {
	f     *os.File
	buf   *bufio.Writer
	tmp   string
	final string
	done  bool
}

func (w *diskWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *diskWriter) Commit() error {
	if w.done {
		return errors.New("writer already finished")
	}
	w.done = true

	if err := w.buf.Flush(); err != nil {
		w.discard()
		return fmt.Errorf("flush: %w", err)
	}
	if err := w.f.Sync(); err != nil {
		w.discard()
		return fmt.Errorf("sync: %w", err)
	}
	if err := w.f.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(w.tmp, w.final); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (w *diskWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	return w.discard()
}

func (w *diskWriter) discard() error {
	_ = w.f.Close()
	if err := os.Remove(w.tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
