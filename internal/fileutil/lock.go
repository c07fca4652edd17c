package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("output is locked by another process")

// OutputLock guards an output path against concurrent writers. The lock lives
// in a sidecar file next to the guarded path ("<path>.lock").
type OutputLock struct {
	path string
	lock *flock.Flock
}

// NewOutputLock prepares (but does not take) the lock for target.
func NewOutputLock(target string) *OutputLock {
	lockPath := target + ".lock"
	return &OutputLock{path: lockPath, lock: flock.New(lockPath)}
}

// Path returns the sidecar lock file location.
func (l *OutputLock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking.
func (l *OutputLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (%s)", ErrLocked, l.path)
	}
	return nil
}

// Release drops the lock. The sidecar file stays in place: removing it would
// let a waiter lock the unlinked inode while another process creates a fresh
// file and locks that one.
func (l *OutputLock) Release() error {
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
