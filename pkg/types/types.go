// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package types

import "github.com/oomol-lab/console-win/pkg/logger"

type BasicOpt struct {
	Name            string
	LogPath         string
	ControlEndpoint string
	EventNpipeName  string
	BindPID         int
	Logger          *logger.Context
}

type RunOpt struct {
	// AttachPID is the console owner to attach to; 0 means the parent
	// of the calling process.
	AttachPID  int
	AutoFlush  bool
	Hidden     bool
	GuardClose bool
	NoExitKeys bool

	BasicOpt
}
