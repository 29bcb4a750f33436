// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"golang.org/x/sys/windows"
)

// ATTACH_PARENT_PROCESS attaches to the console of the parent of the
// calling process, the reserved (DWORD)-1 pid.
//
// Ref: https://learn.microsoft.com/en-us/windows/console/attachconsole#parameters
const ATTACH_PARENT_PROCESS = ^uintptr(0)

// AttachConsole attaches the calling process to the console of the specified process.
//
// [ATTACH_PARENT_PROCESS] can be used to attach to the parent process.
// Ref: https://learn.microsoft.com/en-us/windows/console/attachconsole
func AttachConsole(pid uintptr) error {
	if ret, _, lastErr := attachConsole.Call(pid); ret == 0 {
		return lastError("AttachConsole", lastErr)
	}

	return nil
}

// AllocConsole allocates a new console for the calling process.
//
// Fails when the process already has a console.
// Ref: https://learn.microsoft.com/en-us/windows/console/allocconsole
func AllocConsole() error {
	if ret, _, lastErr := allocConsole.Call(); ret == 0 {
		return lastError("AllocConsole", lastErr)
	}

	return nil
}

// FreeConsole detaches the calling process from its console.
//
// The platform reports success even when no console is attached.
// Ref: https://learn.microsoft.com/en-us/windows/console/freeconsole
func FreeConsole() error {
	if ret, _, lastErr := freeConsole.Call(); ret == 0 {
		return lastError("FreeConsole", lastErr)
	}

	return nil
}

// GetConsoleWindow returns the window handle of the console associated
// with the calling process, or 0 when there is none.
//
// Ref: https://learn.microsoft.com/en-us/windows/console/getconsolewindow
func GetConsoleWindow() windows.HWND {
	hwnd, _, _ := getConsoleWindow.Call()
	return windows.HWND(hwnd)
}

// SetConsoleCtrlHandler adds or removes a HandlerRoutine callback.
//
// The callback must be a pointer produced by windows.NewCallback and is
// invoked by the platform on its own thread.
// Ref: https://learn.microsoft.com/en-us/windows/console/setconsolectrlhandler
func SetConsoleCtrlHandler(handler uintptr, add bool) error {
	var bAdd uintptr
	if add {
		bAdd = 1
	}

	if ret, _, lastErr := setConsoleCtrlHandler.Call(handler, bAdd); ret == 0 {
		return lastError("SetConsoleCtrlHandler", lastErr)
	}

	return nil
}
