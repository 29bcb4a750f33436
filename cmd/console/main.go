// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oomol-lab/console-win/pkg/cli"
	"github.com/oomol-lab/console-win/pkg/types"
	"github.com/oomol-lab/console-win/pkg/util"
	ucli "github.com/urfave/cli/v3"
)

func main() {
	cmd := &ucli.Command{
		Name:  "console-win",
		Usage: "Attach, allocate and control the console of the current process",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:     "name",
				Usage:    "Name of the control endpoint (the foo in //./pipe/console-foo)",
				Required: true,
			},
			&ucli.StringFlag{
				Name:     "log-path",
				Usage:    "Path to the log folder",
				Required: true,
			},
			&ucli.StringFlag{
				Name:  "event-npipe-name",
				Usage: "HTTP server established in the named pipe (such as the foo in //./pipe/foo) must implement the GET /notify?event=&message= route",
			},
			&ucli.IntFlag{
				Name:  "bind-pid",
				Usage: "Exit when the process with this pid exits",
			},
			&ucli.IntFlag{
				Name:  "attach-pid",
				Usage: "Attach to the console of this pid instead of best-effort parent attach",
			},
			&ucli.BoolFlag{
				Name:  "auto-flush",
				Usage: "Flush console-bound output on every write",
				Value: true,
			},
			&ucli.BoolFlag{
				Name:  "hidden",
				Usage: "Hide the console window after acquiring it",
			},
			&ucli.BoolFlag{
				Name:  "guard-close",
				Usage: "Remove the close command from the console window's system menu",
			},
			&ucli.BoolFlag{
				Name:  "no-exit-keys",
				Usage: "Suppress Ctrl-C / Ctrl-Break termination",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		util.Exit(1)
	}

	util.Exit(0)
}

func run(_ context.Context, cmd *ucli.Command) error {
	opt := &types.RunOpt{
		AttachPID:  int(cmd.Int("attach-pid")),
		AutoFlush:  cmd.Bool("auto-flush"),
		Hidden:     cmd.Bool("hidden"),
		GuardClose: cmd.Bool("guard-close"),
		NoExitKeys: cmd.Bool("no-exit-keys"),
		BasicOpt: types.BasicOpt{
			Name:           cmd.String("name"),
			LogPath:        cmd.String("log-path"),
			EventNpipeName: cmd.String("event-npipe-name"),
			BindPID:        int(cmd.Int("bind-pid")),
		},
	}

	c := cli.RunCmd(opt)

	if err := c.Setup(); err != nil {
		return fmt.Errorf("failed to setup: %w", err)
	}

	if err := c.Start(); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}

	return nil
}
