package agentsmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockDir returns the per-user directory for target lock files.
func DefaultLockDir() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "skills-scout", "locks")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return dir, nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir := filepath.Join(home, ".skills-scout", "locks")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("cannot determine writable lock directory")
}

// lockPath names the lock file for target inside dir.
func lockPath(dir, target string) string {
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(dir, "pin-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireLock takes the lock for target, polling until timeout.
func acquireLock(dir, target string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create lock directory %s: %w", dir, err)
	}
	path := lockPath(dir, target)
	l := flock.New(path)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire lock for %s: %w", target, err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another run is updating %s (lock: %s)", target, path)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
