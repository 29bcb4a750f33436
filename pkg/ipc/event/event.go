// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package event

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Code-Hex/go-infinity-channel"
	"github.com/Microsoft/go-winio"
	"github.com/oomol-lab/console-win/pkg/logger"
)

type key string

const (
	kConsole key = "console"
	kWindow  key = "window"
	kKeys    key = "keys"
	kError   key = "error"
)

type console string

const (
	Attached  console = "Attached"
	Allocated console = "Allocated"
	Acquired  console = "Acquired" // best-effort path, attach or alloc
	Released  console = "Released"
	Exit      console = "Exit"
)

type window string

const (
	Shown         window = "Shown"
	Hidden        window = "Hidden"
	CloseDisabled window = "CloseDisabled"
	CloseRestored window = "CloseRestored"
)

type keys string

const (
	ExitKeysEnabled  keys = "ExitKeysEnabled"
	ExitKeysDisabled keys = "ExitKeysDisabled"
)

type datum struct {
	name    string
	message string
}

type event struct {
	client  *http.Client
	log     *logger.Context
	channel *infinity.Channel[*datum]
}

var e *event

// see: https://github.com/Code-Hex/go-infinity-channel/issues/1
var waitDone = make(chan struct{})

// Setup connects the notifier to the client's named pipe. The client
// must serve GET /notify?event=&message=.
func Setup(log *logger.Context, socketPath string) {
	c := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return winio.DialPipeContext(ctx, socketPath)
			},
		},
		Timeout: 200 * time.Millisecond,
	}

	e = &event{
		client:  c,
		log:     log,
		channel: infinity.NewChannel[*datum](),
	}

	go func() {
		for datum := range e.channel.Out() {
			uri := fmt.Sprintf("http://console/notify?event=%s&message=%s", datum.name, url.QueryEscape(datum.message))
			e.log.Infof("Notify %s event to %s", datum.name, uri)

			if resp, err := e.client.Get(uri); err != nil {
				e.log.Warnf("Notify %+v event failed: %v", *datum, err)
			} else {
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					e.log.Warnf("Notify %+v event failed, status code is: %d", *datum, resp.StatusCode)
				}
			}

			if datum.message == string(Exit) {
				waitDone <- struct{}{}
				return
			}
		}
	}()
}

func notify(k string, v string) {
	if e == nil {
		return
	}

	e.channel.In() <- &datum{
		name:    k,
		message: v,
	}

	// wait for the event to be processed
	// Exit event indicates the main process exit
	if v == string(Exit) {
		e.channel.Close()
		<-waitDone
		close(waitDone)
		e = nil
	}
}

func NotifyConsole(v console) {
	notify(string(kConsole), string(v))
}

func NotifyWindow(v window) {
	notify(string(kWindow), string(v))
}

func NotifyKeys(v keys) {
	notify(string(kKeys), string(v))
}

func NotifyError(err error) {
	notify(string(kError), err.Error())
}
