// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/oomol-lab/console-win/pkg/logger"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Context {
	t.Helper()

	log, err := logger.New(t.TempDir(), "test")
	require.NoError(t, err)
	t.Cleanup(log.Close)

	return log
}

func TestWaitBindPIDZero(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, WaitBindPID(ctx, testLogger(t), 0))
}

func TestWaitBindPIDCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// our own pid keeps existing, so only the context ends the wait
	start := time.Now()
	require.NoError(t, WaitBindPID(ctx, testLogger(t), os.Getpid()))
	require.Less(t, time.Since(start), 5*time.Second)
}
