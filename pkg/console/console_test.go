// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package console

import (
	"errors"
	"testing"

	"github.com/oomol-lab/console-win/pkg/winapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

// ensureTestConsole makes sure the test process has a console session,
// whichever way the test runner launched it.
func ensureTestConsole(t *testing.T) {
	t.Helper()

	_, err := Ensure(true)
	require.NoError(t, err)

	_, err = Window()
	require.NoError(t, err, "expected a resolvable console window after Ensure")
}

func TestEnsureIdempotent(t *testing.T) {
	_, err := Ensure(true)
	require.NoError(t, err)

	// a console session now exists, so nothing is left to acquire
	acquired, err := Ensure(true)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestWindowAfterEnsure(t *testing.T) {
	ensureTestConsole(t)

	hwnd, err := Window()
	require.NoError(t, err)
	assert.NotZero(t, hwnd)
}

func TestHideThenShow(t *testing.T) {
	ensureTestConsole(t)

	require.NoError(t, Hide())
	require.NoError(t, Show())
}

func TestDisableCloseButtonTwice(t *testing.T) {
	ensureTestConsole(t)

	// start from the default menu so the close command is present
	require.NoError(t, ResetSystemMenu())

	require.NoError(t, DisableCloseButton())

	// the command is already gone; the platform reports the failed
	// removal and it is propagated as-is
	err := DisableCloseButton()
	require.Error(t, err)

	var ce *winapi.CallError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "DeleteMenu", ce.Op)

	require.NoError(t, ResetSystemMenu())
}

func TestAllocFailsWhenAttached(t *testing.T) {
	ensureTestConsole(t)

	err := Alloc(true)
	require.Error(t, err)

	var ce *winapi.CallError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "AllocConsole", ce.Op)
}

// TestFreeConsole releases the session and verifies the window is no
// longer resolvable. It re-acquires a console before returning so later
// tests in the package still have one.
func TestFreeConsole(t *testing.T) {
	ensureTestConsole(t)

	require.NoError(t, Free())

	_, err := Window()
	require.Error(t, err)
	assert.True(t, errors.Is(err, windows.ERROR_INVALID_HANDLE))

	// freeing with no console attached still succeeds
	require.NoError(t, Free())

	acquired, err := Ensure(true)
	require.NoError(t, err)
	assert.True(t, acquired)
}
