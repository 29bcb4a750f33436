// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"golang.org/x/sys/windows"
)

// SW Define the [nCmdShow] codes accepted by [ShowWindow]
//
// [nCmdShow]: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-showwindow#parameters
type SW int

const (
	SW_HIDE            SW = 0
	SW_SHOWNORMAL      SW = 1
	SW_SHOWMINIMIZED   SW = 2
	SW_SHOWMAXIMIZED   SW = 3
	SW_SHOWNOACTIVATE  SW = 4
	SW_SHOW            SW = 5
	SW_MINIMIZE        SW = 6
	SW_SHOWMINNOACTIVE SW = 7
	SW_SHOWNA          SW = 8
	SW_RESTORE         SW = 9
	SW_SHOWDEFAULT     SW = 10
	SW_FORCEMINIMIZE   SW = 11
)

// SC system-menu command identifiers for [DeleteMenu]
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/menurc/wm-syscommand
const (
	SC_SIZE     = 0xF000
	SC_MOVE     = 0xF010
	SC_MINIMIZE = 0xF020
	SC_MAXIMIZE = 0xF030
	SC_CLOSE    = 0xF060
	SC_RESTORE  = 0xF120
)

// MF Define how the item argument of [DeleteMenu] is interpreted
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-deletemenu#parameters
const (
	MF_BYCOMMAND  = 0x00000000
	MF_BYPOSITION = 0x00000400
)

// HMENU is a handle to a menu.
type HMENU uintptr

// ShowWindow sets the show state of a window.
//
// The return value of the native call is the previous visibility state,
// not a failure indicator, so this wrapper never reports an error.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-showwindow
func ShowWindow(hwnd windows.HWND, cmd SW) (wasVisible bool) {
	ret, _, _ := showWindow.Call(uintptr(hwnd), uintptr(cmd))
	return ret != 0
}

// GetSystemMenu returns a handle to the copy of the window menu that the
// application can modify. With revert set, the platform instead resets
// the window menu to the default state and returns no handle; that
// variant cannot fail.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-getsystemmenu
func GetSystemMenu(hwnd windows.HWND, revert bool) (HMENU, error) {
	var bRevert uintptr
	if revert {
		bRevert = 1
	}

	ret, _, lastErr := getSystemMenu.Call(uintptr(hwnd), bRevert)
	if ret == 0 && !revert {
		return 0, lastError("GetSystemMenu", lastErr)
	}

	return HMENU(ret), nil
}

// DeleteMenu removes a menu item, identified by command id
// ([MF_BYCOMMAND]) or by ordinal position ([MF_BYPOSITION]).
//
// Removing an item that is not present is a failure per the platform
// contract.
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-deletemenu
func DeleteMenu(menu HMENU, item uint32, flags uint32) error {
	if ret, _, lastErr := deleteMenu.Call(uintptr(menu), uintptr(item), uintptr(flags)); ret == 0 {
		return lastError("DeleteMenu", lastErr)
	}

	return nil
}
