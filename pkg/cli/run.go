// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"

	"github.com/oomol-lab/console-win/pkg/channel"
	"github.com/oomol-lab/console-win/pkg/console"
	"github.com/oomol-lab/console-win/pkg/ipc/event"
	"github.com/oomol-lab/console-win/pkg/ipc/restful"
	"github.com/oomol-lab/console-win/pkg/logger"
	"github.com/oomol-lab/console-win/pkg/types"
	"github.com/oomol-lab/console-win/pkg/util"
	"golang.org/x/sync/errgroup"
)

type RunContext struct {
	types.RunOpt
}

func RunCmd(p *types.RunOpt) *RunContext {
	c := &RunContext{
		*p,
	}
	c.ControlEndpoint = `\\.\pipe\console-` + c.Name
	return c
}

func (c *RunContext) Setup() error {
	// logger
	{
		if err := setupLogPath(&c.BasicOpt); err != nil {
			return fmt.Errorf("failed to setup log path: %w", err)
		}

		if log, err := logger.New(c.LogPath, c.Name); err != nil {
			return fmt.Errorf("failed to setup log: %w", err)
		} else {
			c.Logger = log
		}
	}

	if c.EventNpipeName != "" {
		event.Setup(c.Logger, `\\.\pipe\`+c.EventNpipeName)
	}

	if err := c.acquire(); err != nil {
		return err
	}

	return c.applyWindowOpts()
}

func (c *RunContext) Start() error {
	root, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(root)

	g.Go(func() error {
		return restful.Run(ctx, &c.RunOpt, c.Logger)
	})

	g.Go(func() error {
		return util.WaitBindPID(ctx, c.Logger, c.BindPID)
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-channel.ReceiveConsoleReleased():
			c.Logger.Info("console released through the control endpoint, shutting down")
			cancel()
		}
		return nil
	})

	err := g.Wait()
	event.NotifyConsole(event.Exit)
	return err
}

// acquire sets up the console session per the run options: attach to an
// explicit pid when one is given, otherwise best-effort
// attach-to-parent with allocate fallback.
func (c *RunContext) acquire() error {
	if c.AttachPID > 0 {
		if err := console.Attach(uint32(c.AttachPID), c.AutoFlush); err != nil {
			return fmt.Errorf("failed to attach console of pid %d: %w", c.AttachPID, err)
		}
		c.Logger.Infof("attached to console of pid %d", c.AttachPID)
		event.NotifyConsole(event.Attached)
		return nil
	}

	acquired, err := console.Ensure(c.AutoFlush)
	if err != nil {
		return fmt.Errorf("failed to ensure console: %w", err)
	}

	if acquired {
		c.Logger.Info("console acquired")
		event.NotifyConsole(event.Acquired)
	} else {
		c.Logger.Info("console already associated, nothing acquired")
	}

	return nil
}

func (c *RunContext) applyWindowOpts() error {
	if c.Hidden {
		if err := console.Hide(); err != nil {
			return fmt.Errorf("failed to hide console window: %w", err)
		}
		event.NotifyWindow(event.Hidden)
	}

	if c.GuardClose {
		if err := console.DisableCloseButton(); err != nil {
			return fmt.Errorf("failed to disable close button: %w", err)
		}
		event.NotifyWindow(event.CloseDisabled)
	}

	if c.NoExitKeys {
		if err := console.DisableExitKeys(); err != nil {
			return fmt.Errorf("failed to disable exit keys: %w", err)
		}
		event.NotifyKeys(event.ExitKeysDisabled)
	}

	return nil
}
