package platform

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func lockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "minaret.pid")
}

func TestAcquireWritesOwnPID(t *testing.T) {
	path := lockPath(t)
	if err := AcquireLock(path); err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer ReleaseLock(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read lock: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		t.Fatalf("parse lock: %v", err)
	}
	if pid != os.Getpid() {
		t.Errorf("lock PID = %d, want %d", pid, os.Getpid())
	}
}

func TestAcquireRejectsLiveHolder(t *testing.T) {
	path := lockPath(t)
	// Our own PID is as live as it gets.
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		t.Fatalf("seed lock: %v", err)
	}
	if err := AcquireLock(path); err == nil {
		t.Fatal("expected error when a live process holds the lock")
	}
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	path := lockPath(t)
	// PIDs are recycled but a value beyond pid_max is never live.
	if err := os.WriteFile(path, []byte("99999999"), 0o644); err != nil {
		t.Fatalf("seed lock: %v", err)
	}
	if err := AcquireLock(path); err != nil {
		t.Fatalf("AcquireLock over stale lock: %v", err)
	}
	defer ReleaseLock(path)
}

func TestAcquireIgnoresGarbageLock(t *testing.T) {
	path := lockPath(t)
	if err := os.WriteFile(path, []byte("not a pid"), 0o644); err != nil {
		t.Fatalf("seed lock: %v", err)
	}
	if err := AcquireLock(path); err != nil {
		t.Fatalf("AcquireLock over garbage lock: %v", err)
	}
	defer ReleaseLock(path)
}

func TestReleaseMissingIsNoError(t *testing.T) {
	if err := ReleaseLock(lockPath(t)); err != nil {
		t.Errorf("ReleaseLock on missing file: %v", err)
	}
}
