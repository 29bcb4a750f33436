// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package restful

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oomol-lab/console-win/pkg/console"
	"github.com/oomol-lab/console-win/pkg/logger"
	"github.com/oomol-lab/console-win/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMux(t *testing.T) http.Handler {
	t.Helper()

	log, err := logger.New(t.TempDir(), "restful")
	require.NoError(t, err)
	t.Cleanup(log.Close)

	r := &restful{
		log: log,
		opt: &types.RunOpt{},
	}

	return r.mux()
}

func get(t *testing.T, mux http.Handler, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	return rec.Code, string(body)
}

func TestPing(t *testing.T) {
	code, body := get(t, testMux(t), "/ping")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body)
}

func TestWindowRoute(t *testing.T) {
	mux := testMux(t)

	_, err := console.Ensure(true)
	require.NoError(t, err)

	code, body := get(t, mux, "/console/window")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(body, "0x"))
}

func TestShowHideRoutes(t *testing.T) {
	mux := testMux(t)

	_, err := console.Ensure(true)
	require.NoError(t, err)

	code, body := get(t, mux, "/console/hide")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, body = get(t, mux, "/console/show")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestExitKeysRoutes(t *testing.T) {
	mux := testMux(t)

	_, err := console.Ensure(true)
	require.NoError(t, err)

	code, _ := get(t, mux, "/console/exit-keys/disable")
	require.Equal(t, http.StatusOK, code)

	code, _ = get(t, mux, "/console/exit-keys/enable")
	require.Equal(t, http.StatusOK, code)
}
