// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLevels(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir, "console")
	require.NoError(t, err)
	defer c.Close()

	c.Info("attached")
	c.Warnf("retrying %d", 2)
	err = c.Errorf("failed to %s", "alloc")
	require.Error(t, err)
	assert.Equal(t, "failed to alloc", err.Error())

	data, err := os.ReadFile(filepath.Join(dir, "console.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[INFO]: attached")
	assert.Contains(t, content, "[WARN]: retrying 2")
	assert.Contains(t, content, "[ERROR]: failed to alloc")
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir, "console")
	require.NoError(t, err)
	c.Info("first run")
	c.Close()

	c, err = New(dir, "console")
	require.NoError(t, err)
	defer c.Close()

	_, err = os.Stat(filepath.Join(dir, "console.2.log"))
	assert.NoError(t, err, "previous log should be rotated to .2")

	data, err := os.ReadFile(filepath.Join(dir, "console.2.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
}

func TestNewWithAppendName(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir, "console")
	require.NoError(t, err)
	defer c.Close()

	sub, err := c.NewWithAppendName("restful")
	require.NoError(t, err)
	defer sub.Close()

	sub.Info("ready")

	_, err = os.Stat(filepath.Join(dir, "console-restful.log"))
	assert.NoError(t, err)
}
