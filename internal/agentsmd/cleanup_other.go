//go:build !windows

package agentsmd

import (
	"errors"
	"os"
)

// cleanupTemp removes a leftover temp file if possible.
func cleanupTemp(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
