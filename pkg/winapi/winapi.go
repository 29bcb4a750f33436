// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32 *windows.LazyDLL
	user32   *windows.LazyDLL

	attachConsole         *windows.LazyProc
	allocConsole          *windows.LazyProc
	freeConsole           *windows.LazyProc
	getConsoleWindow      *windows.LazyProc
	setConsoleCtrlHandler *windows.LazyProc
	showWindow            *windows.LazyProc
	getSystemMenu         *windows.LazyProc
	deleteMenu            *windows.LazyProc
)

func init() {
	// lib
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	// function
	attachConsole = kernel32.NewProc("AttachConsole")
	allocConsole = kernel32.NewProc("AllocConsole")
	freeConsole = kernel32.NewProc("FreeConsole")
	getConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	setConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
	showWindow = user32.NewProc("ShowWindow")
	getSystemMenu = user32.NewProc("GetSystemMenu")
	deleteMenu = user32.NewProc("DeleteMenu")
}
