//go:build windows

package agentsmd

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// cleanupTemp removes a leftover temp file if possible.
//
// Editors and indexers watching the target directory can hold the new file
// open briefly; retry, then schedule deletion at next reboot.
func cleanupTemp(path string) error {
	var lastErr error
	for i := 0; i < 10; i++ {
		err := os.Remove(path)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		lastErr = err
		time.Sleep(100 * time.Millisecond)
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return lastErr
	}
	if err := windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT); err != nil {
		return lastErr
	}
	return nil
}
