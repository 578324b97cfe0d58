// Package platform holds the host-integration pieces of the kiosk: the
// single-instance lock that keeps a crashed-and-respawned kiosk from
// running twice against the same display and state directory.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// AcquireLock creates a lock file at path holding the current process PID.
// It fails if another live minaret process already holds it. A lock file
// pointing at a dead process is treated as stale and replaced.
//
// The write is atomic: content goes to a temporary file in the same
// directory, then renames into place.
func AcquireLock(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	if existing, err := readLockPID(path); err == nil {
		if processAlive(existing) {
			return fmt.Errorf("minaret already running (PID %d)", existing)
		}
		os.Remove(path)
	}

	pid := os.Getpid()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("write temp lock file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename lock file: %w", err)
	}
	return nil
}

// ReleaseLock removes the lock file. Missing files are not an error so
// release is safe to defer unconditionally.
func ReleaseLock(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}

// readLockPID reads and parses the PID from the lock file.
func readLockPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read lock file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse lock file: %w", err)
	}
	return pid, nil
}

// processAlive checks for a live process by sending signal 0: nil means
// the process exists and we may signal it, ESRCH means it is gone.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
