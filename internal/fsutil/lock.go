// Package fsutil holds filesystem helpers shared by the conversion units.
package fsutil

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// ErrLocked reports that another process holds the advisory lock.
var ErrLocked = errors.New(messages.LockHeld)

var flockFn = unix.Flock
var lockSleep = time.Sleep

var (
	// LockWaitTimeout bounds how long LockExclusive polls a contended lock.
	LockWaitTimeout = 2 * time.Second
	lockPollEvery   = 50 * time.Millisecond
)

// LockExclusive takes an exclusive advisory lock on fd, polling until
// LockWaitTimeout. A zero timeout makes a single attempt and returns
// ErrLocked when the lock is held elsewhere.
func LockExclusive(fd uintptr) error {
	deadline := time.Now().Add(LockWaitTimeout)
	for {
		err := flockFn(int(fd), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if LockWaitTimeout <= 0 {
			return ErrLocked
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt+": %w", LockWaitTimeout, ErrLocked)
		}
		lockSleep(lockPollEvery)
	}
}

// Unlock releases the advisory lock on fd.
func Unlock(fd uintptr) error {
	return flockFn(int(fd), unix.LOCK_UN)
}
