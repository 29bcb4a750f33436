// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

// Package console controls the attachment of the current process to a
// Windows console and the behavior of that console's window.
//
// The console session, the standard stream bindings and the exit-key
// mode are process-wide singletons. The exit-key switch serializes its
// own transitions; acquisition and release are not coordinated here and
// concurrent callers must serialize them on their side.
package console

import (
	"fmt"

	"github.com/oomol-lab/console-win/pkg/winapi"
	"golang.org/x/sys/windows"
)

// ParentProcess is the reserved pid that means "the parent of the
// calling process" when attaching.
const ParentProcess = ^uint32(0)

// Ensure makes a console available on a best-effort basis: attach to the
// parent's console, else allocate a new one. acquired is false when both
// fail, which normally means the process already has a usable console;
// that outcome is not an error.
//
// On success the standard streams are rebound to the console.
func Ensure(autoFlush bool) (acquired bool, err error) {
	if err := winapi.AttachConsole(uintptr(ParentProcess)); err != nil {
		if err := winapi.AllocConsole(); err != nil {
			return false, nil
		}
	}

	if err := BindStreams(autoFlush); err != nil {
		return true, fmt.Errorf("failed to bind standard streams: %w", err)
	}

	return true, nil
}

// Attach attaches the calling process to the console of pid
// ([ParentProcess] for the parent) and rebinds the standard streams.
func Attach(pid uint32, autoFlush bool) error {
	if err := winapi.AttachConsole(uintptr(pid)); err != nil {
		return fmt.Errorf("failed to attach console: %w", err)
	}

	if err := BindStreams(autoFlush); err != nil {
		return fmt.Errorf("failed to bind standard streams: %w", err)
	}

	return nil
}

// Alloc allocates a brand-new console for the calling process and
// rebinds the standard streams. Fails when a console is already
// attached.
func Alloc(autoFlush bool) error {
	if err := winapi.AllocConsole(); err != nil {
		return fmt.Errorf("failed to alloc console: %w", err)
	}

	if err := BindStreams(autoFlush); err != nil {
		return fmt.Errorf("failed to bind standard streams: %w", err)
	}

	return nil
}

// Window resolves the window handle of the current console session.
func Window() (windows.HWND, error) {
	hwnd := winapi.GetConsoleWindow()
	if hwnd == 0 {
		// GetConsoleWindow reports "no console" through the null handle
		// alone, without touching the last-error state.
		return 0, &winapi.CallError{Op: "GetConsoleWindow", Code: windows.ERROR_INVALID_HANDLE}
	}

	return hwnd, nil
}

// Free detaches the calling process from its console. Succeeds when no
// console is attached; buffered console output is flushed first.
func Free() error {
	releaseStreams()

	if err := winapi.FreeConsole(); err != nil {
		return fmt.Errorf("failed to free console: %w", err)
	}

	return nil
}
