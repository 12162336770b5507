package agentsmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kamusis/skills-scout/internal/logging"
)

// ReadDocument returns the contents of path, or DefaultDocument when the file
// does not exist.
func ReadDocument(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultDocument, nil
		}
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(b), nil
}

const defaultLockTimeout = 10 * time.Second

// Writer replaces target documents atomically.
type Writer struct {
	// LockDir holds per-target lock files. Empty disables locking.
	LockDir string
	// Timeout bounds the wait for the lock; zero means 10s.
	Timeout time.Duration
}

// Write replaces path with content. It reports changed=false, without
// touching the file, when the bytes on disk already equal content. When path
// is a symlink the file it points to is replaced and the link is kept.
func (w Writer) Write(path, content string) (changed bool, err error) {
	path, err = resolveTarget(path)
	if err != nil {
		return false, err
	}
	if w.LockDir != "" {
		timeout := w.Timeout
		if timeout <= 0 {
			timeout = defaultLockTimeout
		}
		unlock, err := acquireLock(w.LockDir, path, timeout)
		if err != nil {
			return false, err
		}
		defer unlock()
	}

	data := []byte(content)
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		cur, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if bytes.Equal(cur, data) {
			return false, nil
		}
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if err := replaceFile(path, data, mode); err != nil {
		return false, err
	}
	return true, nil
}

// resolveTarget follows symlinks at path, including a dangling final link,
// so the document is written where the link points.
func resolveTarget(path string) (string, error) {
	for range 40 {
		info, err := os.Lstat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return path, nil
			}
			return "", fmt.Errorf("cannot stat %s: %w", path, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}
		dest, err := os.Readlink(path)
		if err != nil {
			return "", fmt.Errorf("cannot read link %s: %w", path, err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return "", fmt.Errorf("too many levels of symbolic links at %s", path)
}

// replaceFile writes data to a temp file beside path and renames it over path.
func replaceFile(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := cleanupTemp(tmpPath); err != nil {
			logging.Warn("cannot remove temp file", "path", tmpPath, "error", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cannot write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("cannot chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	committed = true
	return nil
}
