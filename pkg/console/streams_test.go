// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectedDetection(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	assert.True(t, redirected(f), "a disk file is an external redirection")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	assert.True(t, redirected(r))
	assert.True(t, redirected(w))
}

func TestBindKeepsRedirectedStream(t *testing.T) {
	ensureTestConsole(t)

	f, err := os.Create(filepath.Join(t.TempDir(), "stdout.txt"))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	origOut := os.Stdout
	os.Stdout = f
	defer func() {
		os.Stdout = origOut
	}()

	require.NoError(t, BindStreams(true))
	assert.Same(t, f, os.Stdout, "an externally redirected stream must not be rebound")

	// repeated calls do not touch it either
	require.NoError(t, BindStreams(true))
	assert.Same(t, f, os.Stdout)
}

func TestBindIdempotent(t *testing.T) {
	ensureTestConsole(t)

	require.NoError(t, BindStreams(true))
	first := conout

	require.NoError(t, BindStreams(true))
	if first != nil && conout != nil {
		assert.NotSame(t, first, conout, "rebinding supersedes the console file the prior call opened")
	}
}

func TestBindBufferedThenFlush(t *testing.T) {
	ensureTestConsole(t)

	require.NoError(t, BindStreams(false))
	if conerr != nil {
		assert.NotNil(t, logWriter)
	}

	Flush()

	// back to write-through
	require.NoError(t, BindStreams(true))
	assert.Nil(t, logWriter)
}
