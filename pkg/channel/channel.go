// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package channel

type _context struct {
	consoleReleased   chan struct{}
	visibilityChanged chan bool
}

var c *_context

func init() {
	c = &_context{
		consoleReleased:   make(chan struct{}, 1),
		visibilityChanged: make(chan bool, 1),
	}
}

func Close() {
	close(c.consoleReleased)
	close(c.visibilityChanged)
}

// Notifications never block the sender; a pending one is enough.

func NotifyConsoleReleased() {
	select {
	case c.consoleReleased <- struct{}{}:
	default:
	}
}

func ReceiveConsoleReleased() <-chan struct{} {
	return c.consoleReleased
}

func NotifyVisibilityChanged(visible bool) {
	select {
	case c.visibilityChanged <- visible:
	default:
	}
}

func ReceiveVisibilityChanged() <-chan bool {
	return c.visibilityChanged
}
