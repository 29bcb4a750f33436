// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package restful

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oomol-lab/console-win/pkg/channel"
	"github.com/oomol-lab/console-win/pkg/console"
	"github.com/oomol-lab/console-win/pkg/ipc/event"
	"github.com/oomol-lab/console-win/pkg/logger"
	"github.com/oomol-lab/console-win/pkg/types"
	"github.com/oomol-lab/console-win/pkg/winapi/npipe"
)

type restful struct {
	log *logger.Context
	opt *types.RunOpt
}

// Run serves the console control endpoint on the named pipe until ctx
// is done.
func Run(ctx context.Context, opt *types.RunOpt, log *logger.Context) error {
	r := &restful{
		log: log,
		opt: opt,
	}

	return r.start(ctx)
}

func (r *restful) start(ctx context.Context) error {
	nl, err := npipe.Create(r.opt.ControlEndpoint)
	if err != nil {
		return fmt.Errorf("failed to create npipe listener: %w", err)
	}

	r.log.Infof("control server is ready to run on %s", r.opt.ControlEndpoint)

	go func() {
		<-ctx.Done()
		_ = nl.Close()
		r.log.Info("control server is shutting down, because the context is done")
	}()

	server := &http.Server{
		Handler: r.mux(),
	}

	if err := server.Serve(nl); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve control server: %w", err)
	}

	return nil
}

func (r *restful) mux() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ping", middlewareLog(r.log, ping))
	mux.Handle("/console/window", middlewareLog(r.log, windowHandle))
	mux.Handle("/console/show", middlewareLog(r.log, show))
	mux.Handle("/console/hide", middlewareLog(r.log, hide))
	mux.Handle("/console/free", middlewareLog(r.log, free))
	mux.Handle("/console/close-button/disable", middlewareLog(r.log, disableCloseButton))
	mux.Handle("/console/close-button/reset", middlewareLog(r.log, resetCloseButton))
	mux.Handle("/console/exit-keys/enable", middlewareLog(r.log, enableExitKeys))
	mux.Handle("/console/exit-keys/disable", middlewareLog(r.log, disableExitKeys))
	return mux
}

func ping(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("pong"))
}

func windowHandle(w http.ResponseWriter, _ *http.Request) {
	hwnd, err := console.Window()
	if err != nil {
		fail(w, err)
		return
	}

	_, _ = fmt.Fprintf(w, "0x%X", uintptr(hwnd))
}

func show(w http.ResponseWriter, _ *http.Request) {
	if err := console.Show(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyWindow(event.Shown)
	channel.NotifyVisibilityChanged(true)
	ok(w)
}

func hide(w http.ResponseWriter, _ *http.Request) {
	if err := console.Hide(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyWindow(event.Hidden)
	channel.NotifyVisibilityChanged(false)
	ok(w)
}

func free(w http.ResponseWriter, _ *http.Request) {
	if err := console.Free(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyConsole(event.Released)
	channel.NotifyConsoleReleased()
	ok(w)
}

func disableCloseButton(w http.ResponseWriter, _ *http.Request) {
	if err := console.DisableCloseButton(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyWindow(event.CloseDisabled)
	ok(w)
}

func resetCloseButton(w http.ResponseWriter, _ *http.Request) {
	if err := console.ResetSystemMenu(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyWindow(event.CloseRestored)
	ok(w)
}

func enableExitKeys(w http.ResponseWriter, _ *http.Request) {
	if err := console.EnableExitKeys(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyKeys(event.ExitKeysEnabled)
	ok(w)
}

func disableExitKeys(w http.ResponseWriter, _ *http.Request) {
	if err := console.DisableExitKeys(); err != nil {
		fail(w, err)
		return
	}

	event.NotifyKeys(event.ExitKeysDisabled)
	ok(w)
}

func ok(w http.ResponseWriter) {
	_, _ = w.Write([]byte("ok"))
}

func fail(w http.ResponseWriter, err error) {
	event.NotifyError(err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func middlewareLog(log *logger.Context, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Infof("control server: received request: %s", r.URL.Path)
		next.ServeHTTP(w, r)
		log.Infof("control server: finished request: %s", r.URL.Path)
	})
}
