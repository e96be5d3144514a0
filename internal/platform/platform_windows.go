//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/randomizedcoder/go-timelimit/internal/cmdline"
)

// hostPlatform is the Windows backend. Process creation consumes the
// escaped command-line string; the child's own CommandLineToArgvW
// recovers the original argument vector from it.
type hostPlatform struct{}

// Spawn starts the child via CreateProcess with no creation flags, no
// handle inheritance, and the parent's environment and directory.
func (hostPlatform) Spawn(cl cmdline.CommandLine) (Handle, error) {
	commandLine, err := windows.UTF16PtrFromString(cl.String())
	if err != nil {
		return nil, fmt.Errorf("encode command line: %w", err)
	}

	var si windows.StartupInfo
	si.Cb = uint32(unsafe.Sizeof(si))
	var pi windows.ProcessInformation

	err = windows.CreateProcess(
		nil,         // no module name, use command line
		commandLine, // command line
		nil,         // process handle not inheritable
		nil,         // thread handle not inheritable
		false,       // no handle inheritance
		0,           // no creation flags
		nil,         // parent's environment block
		nil,         // parent's working directory
		&si,
		&pi,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, err
	}

	return &winHandle{
		process: pi.Process,
		thread:  pi.Thread,
		pid:     int(pi.ProcessId),
	}, nil
}

// winHandle owns the process and thread handles returned by
// CreateProcess. Release closes both exactly once.
type winHandle struct {
	process  windows.Handle
	thread   windows.Handle
	pid      int
	released bool
}

func (h *winHandle) Pid() int {
	return h.pid
}

func (h *winHandle) Wait(timeoutMS uint32) (WaitOutcome, error) {
	event, err := windows.WaitForSingleObject(h.process, timeoutMS)
	if err != nil {
		return WaitUnknown, err
	}
	switch event {
	case windows.WAIT_OBJECT_0:
		return WaitCompleted, nil
	case uint32(windows.WAIT_TIMEOUT):
		return WaitTimedOut, nil
	default:
		return WaitUnknown, fmt.Errorf("wait returned event %#x", event)
	}
}

func (h *winHandle) Terminate() error {
	return windows.TerminateProcess(h.process, 0)
}

// TerminateCheck performs a zero-duration wait on the thread handle.
// Only a failure of the call itself is reported; the event value is
// not interpreted.
func (h *winHandle) TerminateCheck() error {
	_, err := windows.WaitForSingleObject(h.thread, 0)
	return err
}

func (h *winHandle) ExitCode() (int, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(h.process, &code); err != nil {
		return 0, err
	}
	return int(code), nil
}

func (h *winHandle) Release() error {
	if h.released {
		return nil
	}
	h.released = true

	threadErr := windows.CloseHandle(h.thread)
	processErr := windows.CloseHandle(h.process)
	if threadErr != nil {
		return threadErr
	}
	return processErr
}
