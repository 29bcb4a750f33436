// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomol-lab/console-win/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmdEndpoint(t *testing.T) {
	c := RunCmd(&types.RunOpt{
		BasicOpt: types.BasicOpt{Name: "demo"},
	})

	assert.Equal(t, `\\.\pipe\console-demo`, c.ControlEndpoint)
}

func TestSetupLogPath(t *testing.T) {
	opt := &types.BasicOpt{
		LogPath: filepath.Join(t.TempDir(), "logs", "nested"),
	}

	require.NoError(t, setupLogPath(opt))

	info, err := os.Stat(opt.LogPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, filepath.IsAbs(opt.LogPath))
}
