//go:build !windows

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/randomizedcoder/go-timelimit/internal/cmdline"
)

// hostPlatform is the portable backend built on os/exec. It consumes
// the argument vector directly; the escaped command-line string is
// only needed by hosts whose process creation takes a single string.
type hostPlatform struct{}

// Spawn starts the child with inherited stdio, environment, and
// working directory.
func (hostPlatform) Spawn(cl cmdline.CommandLine) (Handle, error) {
	argv := cl.Args()
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, err
	}

	h := &unixHandle{
		cmd:    cmd,
		waitCh: make(chan error, 1),
	}

	// The sole Wait call happens on this goroutine; every consumer
	// observes the result through waitCh.
	go func() {
		h.waitCh <- cmd.Wait()
	}()

	return h, nil
}

// unixHandle owns one spawned child. It is used by a single caller;
// no internal locking is needed.
type unixHandle struct {
	cmd      *exec.Cmd
	waitCh   chan error
	waitErr  error
	reaped   bool
	released bool
}

func (h *unixHandle) Pid() int {
	return h.cmd.Process.Pid
}

func (h *unixHandle) Wait(timeoutMS uint32) (WaitOutcome, error) {
	if timeoutMS == InfiniteWait {
		return h.record(<-h.waitCh)
	}

	timer := time.NewTimer(time.Duration(timeoutMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case err := <-h.waitCh:
		return h.record(err)
	case <-timer.C:
		return WaitTimedOut, nil
	}
}

// record stores the reaped result and classifies it. A child that
// exited non-zero is a completed wait; only a failure of the wait
// primitive itself is surfaced as an error.
func (h *unixHandle) record(err error) (WaitOutcome, error) {
	h.reaped = true
	h.waitErr = err
	if err != nil && !isExitError(err) {
		return WaitUnknown, err
	}
	return WaitCompleted, nil
}

func (h *unixHandle) Terminate() error {
	return h.cmd.Process.Kill()
}

// TerminateCheck drains the wait result if the reaper has already
// delivered it. The probe is deliberately weak: it reports an error
// only if the probe itself cannot run, mirroring the zero-duration
// thread-handle wait on the Windows backend.
func (h *unixHandle) TerminateCheck() error {
	if h.cmd.Process == nil {
		return errors.New("no process to probe")
	}
	select {
	case err := <-h.waitCh:
		h.reaped = true
		h.waitErr = err
	default:
	}
	return nil
}

func (h *unixHandle) ExitCode() (int, error) {
	if !h.reaped {
		return 0, errors.New("process not yet waited on")
	}
	if h.waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(h.waitErr, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			// Signal exit: 128 + signal number, shell convention.
			return 128 + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return 0, h.waitErr
}

// Release is a no-op resource-wise: the kernel process entry is
// reaped by the wait goroutine. The flag guards against double
// release and satisfies the one-release-per-handle contract.
func (h *unixHandle) Release() error {
	if h.released {
		return nil
	}
	h.released = true
	return nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
