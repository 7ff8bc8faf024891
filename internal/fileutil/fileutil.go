package fileutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process holds the write lock for a target.
var ErrLocked = errors.New("output file is locked by another process")

// DefaultMode is applied to files written by WriteAtomic.
const DefaultMode os.FileMode = 0o644

// LockPath returns the sidecar lock file guarding writes to path.
func LockPath(path string) string {
	return path + ".lock"
}

// Target is one file written by WriteAtomicAll.
type Target struct {
	Path string
	Fill func(io.Writer) error
}

// WriteAtomic streams fill into a temporary file next to path and renames it
// into place once fill succeeds. A sidecar flock serializes concurrent writers
// of the same target; a held lock fails fast with ErrLocked. On any error the
// target is left untouched.
func WriteAtomic(path string, fill func(io.Writer) error) error {
	return WriteAtomicAll([]Target{{Path: path, Fill: fill}})
}

// WriteAtomicAll stages every target in a locked temporary file and renames
// them into place only after all of them were written. A failure while
// staging leaves every target untouched. A failed rename stops the commit;
// targets renamed before it keep their new content.
func WriteAtomicAll(targets []Target) error {
	staged := make([]*stagedFile, 0, len(targets))
	release := func() {
		for _, sf := range staged {
			sf.discard()
		}
	}
	for _, target := range targets {
		sf, err := stage(target.Path, target.Fill)
		if err != nil {
			release()
			return err
		}
		staged = append(staged, sf)
	}
	for i, sf := range staged {
		if err := sf.commit(); err != nil {
			staged = staged[i:]
			release()
			return err
		}
	}
	return nil
}

// stagedFile is a fully written temporary file holding the lock of its target.
type stagedFile struct {
	path    string
	tmpPath string
	lock    *flock.Flock
}

func stage(path string, fill func(io.Writer) error) (*stagedFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	sf := &stagedFile{path: path, lock: lock}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		sf.discard()
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	sf.tmpPath = tmp.Name()
	if err := writeTemp(tmp, fill); err != nil {
		_ = tmp.Close()
		sf.discard()
		return nil, err
	}
	return sf, nil
}

func writeTemp(tmp *os.File, fill func(io.Writer) error) error {
	buf := bufio.NewWriter(tmp)
	if err := fill(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(DefaultMode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	return nil
}

func (sf *stagedFile) commit() error {
	if err := os.Rename(sf.tmpPath, sf.path); err != nil {
		return fmt.Errorf("rename into %s: %w", sf.path, err)
	}
	sf.tmpPath = ""
	sf.unlock()
	return nil
}

// discard removes the temporary file, if any, and releases the lock.
func (sf *stagedFile) discard() {
	if sf.tmpPath != "" {
		_ = os.Remove(sf.tmpPath)
		sf.tmpPath = ""
	}
	sf.unlock()
}

func (sf *stagedFile) unlock() {
	if sf.lock == nil {
		return
	}
	_ = sf.lock.Unlock()
	_ = os.Remove(sf.lock.Path())
	sf.lock = nil
}

// WriteFileAtomic writes data to path through WriteAtomic.
func WriteFileAtomic(path string, data []byte) error {
	return WriteAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// DerivedPath inserts suffix between the base name and extension of path:
// DerivedPath("data/tracks.csv", "_processed") is "data/tracks_processed.csv".
func DerivedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + suffix + ext
}
