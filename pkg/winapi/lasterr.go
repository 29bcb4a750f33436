// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

// CallError is the error returned by every failing native call in this
// package. It carries the name of the Win32 function and the last-error
// code recorded by the platform at the time of the failure.
//
// The code is preserved as a [syscall.Errno], so callers can branch with
// errors.Is against the windows.ERROR_* values.
type CallError struct {
	Op   string
	Code syscall.Errno
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s (0x%X)", e.Op, formatMessage(e.Code), uint32(e.Code))
}

func (e *CallError) Unwrap() error {
	return e.Code
}

// formatMessage resolves the system message for a last-error code.
//
// MAX_WIDTH_MASK drops the message table's hard line breaks, so the text
// stays on one log line.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-formatmessagew
func formatMessage(code syscall.Errno) string {
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS | windows.FORMAT_MESSAGE_MAX_WIDTH_MASK)
	buf := make([]uint16, 300)

	n, err := windows.FormatMessage(flags, 0, uint32(code), 0, buf, nil)
	if err != nil || n == 0 {
		return code.Error()
	}

	// FormatMessage leaves a trailing space when MAX_WIDTH_MASK is set
	for n > 0 && (buf[n-1] == ' ' || buf[n-1] == 0) {
		n--
	}

	return windows.UTF16ToString(buf[:n])
}

// lastError wraps the errno reported by a failed LazyProc call.
func lastError(op string, err error) error {
	if errno, ok := err.(syscall.Errno); ok {
		return &CallError{Op: op, Code: errno}
	}

	return fmt.Errorf("%s: %v", op, err)
}
