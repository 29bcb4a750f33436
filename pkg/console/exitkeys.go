// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/oomol-lab/console-win/pkg/winapi"
	"golang.org/x/sys/windows"
)

// The exit-key switch composes two platform mechanisms: clearing
// ENABLE_PROCESSED_INPUT turns Ctrl-C into ordinary console input, and a
// ctrl handler vetoes the CTRL_BREAK signal that the input flag does not
// cover. Both transitions go through exitKeyMu, so repeated toggling
// from multiple goroutines cannot stack handler registrations.
var (
	exitKeyMu         sync.Mutex
	handlerRegistered bool

	breakVetoOnce sync.Once
	breakVeto     uintptr
)

// breakVetoHandler is invoked by the platform on a thread of its own
// choosing. It must only classify the event; CTRL_C never reaches it
// while processed input is disabled.
func breakVetoHandler(ctrlType uintptr) uintptr {
	if ctrlType == windows.CTRL_BREAK_EVENT {
		return 1 // handled, do not terminate
	}

	return 0
}

func breakVetoCallback() uintptr {
	// NewCallback allocations are permanent, so the callback is created
	// once and the registration slot toggles it.
	breakVetoOnce.Do(func() {
		breakVeto = windows.NewCallback(breakVetoHandler)
	})

	return breakVeto
}

// DisableExitKeys switches the exit-key mode to Suppressed: Ctrl-C is
// delivered as ordinary input and Ctrl-Break no longer terminates the
// process. Idempotent; repeated calls keep exactly one handler
// registered.
func DisableExitKeys() error {
	exitKeyMu.Lock()
	defer exitKeyMu.Unlock()

	if err := setProcessedInput(false); err != nil {
		return err
	}

	cb := breakVetoCallback()
	if handlerRegistered {
		if err := winapi.SetConsoleCtrlHandler(cb, false); err != nil {
			return err
		}
		handlerRegistered = false
	}

	if err := winapi.SetConsoleCtrlHandler(cb, true); err != nil {
		return err
	}
	handlerRegistered = true

	return nil
}

// EnableExitKeys switches the exit-key mode back to Default: Ctrl-C and
// Ctrl-Break terminate the process again. Safe to call when the
// suppression handler was never registered.
func EnableExitKeys() error {
	exitKeyMu.Lock()
	defer exitKeyMu.Unlock()

	if err := setProcessedInput(true); err != nil {
		return err
	}

	if handlerRegistered {
		if err := winapi.SetConsoleCtrlHandler(breakVetoCallback(), false); err != nil {
			return err
		}
		handlerRegistered = false
	}

	return nil
}

// setProcessedInput toggles ENABLE_PROCESSED_INPUT on the console input
// buffer. The buffer is opened directly so the flag lands on the console
// even when os.Stdin is redirected elsewhere.
func setProcessedInput(enabled bool) error {
	f, err := openConin()
	if err != nil {
		return fmt.Errorf("cannot open CONIN$: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return callError("GetConsoleMode", err)
	}

	if enabled {
		mode |= windows.ENABLE_PROCESSED_INPUT
	} else {
		mode &^= windows.ENABLE_PROCESSED_INPUT
	}

	if err := windows.SetConsoleMode(h, mode); err != nil {
		return callError("SetConsoleMode", err)
	}

	return nil
}

// handlerCount reports how many suppression handlers the registration
// slot currently holds, 0 or 1.
func handlerCount() int {
	exitKeyMu.Lock()
	defer exitKeyMu.Unlock()

	if handlerRegistered {
		return 1
	}

	return 0
}

func openConin() (*os.File, error) {
	return os.OpenFile("CONIN$", os.O_RDWR, 0)
}

func callError(op string, err error) error {
	if errno, ok := err.(syscall.Errno); ok {
		return &winapi.CallError{Op: op, Code: errno}
	}

	return fmt.Errorf("%s: %v", op, err)
}
