// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"

	"github.com/oomol-lab/console-win/pkg/winapi"
)

// Show makes the console window visible and activates it in its current
// size and position.
func Show() error {
	hwnd, err := Window()
	if err != nil {
		return fmt.Errorf("cannot show console window: %w", err)
	}

	winapi.ShowWindow(hwnd, winapi.SW_SHOW)
	return nil
}

// Hide hides the console window and activates another window.
func Hide() error {
	hwnd, err := Window()
	if err != nil {
		return fmt.Errorf("cannot hide console window: %w", err)
	}

	winapi.ShowWindow(hwnd, winapi.SW_HIDE)
	return nil
}

// DisableCloseButton removes the close command from the console window's
// system menu. The user loses the close affordance; the process can
// still be terminated programmatically.
//
// Removing the command a second time fails, because it is already gone
// from the menu copy.
func DisableCloseButton() error {
	hwnd, err := Window()
	if err != nil {
		return fmt.Errorf("cannot disable close button: %w", err)
	}

	menu, err := winapi.GetSystemMenu(hwnd, false)
	if err != nil {
		return fmt.Errorf("cannot obtain system menu: %w", err)
	}

	if err := winapi.DeleteMenu(menu, winapi.SC_CLOSE, winapi.MF_BYCOMMAND); err != nil {
		return fmt.Errorf("cannot remove close command: %w", err)
	}

	return nil
}

// ResetSystemMenu reverts the console window's system menu to the
// default state, restoring any command removed by
// [DisableCloseButton]. The revert variant of the platform call never
// fails, so only an unresolvable window reports an error.
func ResetSystemMenu() error {
	hwnd, err := Window()
	if err != nil {
		return fmt.Errorf("cannot reset system menu: %w", err)
	}

	_, _ = winapi.GetSystemMenu(hwnd, true)
	return nil
}
