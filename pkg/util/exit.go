// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"os"

	"github.com/oomol-lab/console-win/pkg/channel"
	"github.com/oomol-lab/console-win/pkg/logger"
)

func Exit(exitCode int) {
	channel.Close()
	logger.CloseAll()
	os.Exit(exitCode)
}
