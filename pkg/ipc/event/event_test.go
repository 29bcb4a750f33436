// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package event

import (
	"testing"
)

func TestNotifyWithoutSetup(t *testing.T) {
	// no event endpoint configured: notifications are dropped, not sent
	NotifyConsole(Attached)
	NotifyWindow(Hidden)
	NotifyKeys(ExitKeysDisabled)
	NotifyConsole(Exit)
}
