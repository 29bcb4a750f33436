// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package console

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	streamMu sync.Mutex

	// console files opened by BindStreams; never an externally-owned one
	conin  *os.File
	conout *os.File
	conerr *os.File

	logWriter *bufio.Writer
)

// BindStreams points os.Stdin / os.Stdout / os.Stderr (and the process
// standard handles) at the current console's I/O buffers. A stream that
// is already redirected to a file or pipe is left untouched.
//
// Safe to call repeatedly: each replacement closes the console file the
// previous call opened. With autoFlush unset, output written through the
// standard log package is buffered until [Flush] or [Free].
func BindStreams(autoFlush bool) error {
	streamMu.Lock()
	defer streamMu.Unlock()

	if !redirected(os.Stdin) {
		f, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
		if err != nil {
			return fmt.Errorf("cannot open CONIN$: %w", err)
		}
		if err := windows.SetStdHandle(windows.STD_INPUT_HANDLE, windows.Handle(f.Fd())); err != nil {
			_ = f.Close()
			return fmt.Errorf("cannot set standard input handle: %w", err)
		}
		if conin != nil {
			_ = conin.Close()
		}
		conin = f
		os.Stdin = f
	}

	if !redirected(os.Stdout) {
		f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("cannot open CONOUT$: %w", err)
		}
		if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, windows.Handle(f.Fd())); err != nil {
			_ = f.Close()
			return fmt.Errorf("cannot set standard output handle: %w", err)
		}
		if conout != nil {
			_ = conout.Close()
		}
		conout = f
		os.Stdout = f
	}

	if !redirected(os.Stderr) {
		f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("cannot open CONOUT$: %w", err)
		}
		if err := windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(f.Fd())); err != nil {
			_ = f.Close()
			return fmt.Errorf("cannot set standard error handle: %w", err)
		}
		if conerr != nil {
			_ = conerr.Close()
		}
		conerr = f
		os.Stderr = f
	}

	// Route the standard log package to the console we just bound. Only
	// applies when the error stream is console-bound; a redirected stream
	// keeps whatever output the caller configured.
	if conerr != nil {
		if logWriter != nil {
			_ = logWriter.Flush()
			logWriter = nil
		}
		if autoFlush {
			log.SetOutput(conerr)
		} else {
			logWriter = bufio.NewWriter(conerr)
			log.SetOutput(logWriter)
		}
	}

	return nil
}

// Flush writes out console output still held by the log buffer. No-op
// when auto-flush is active.
func Flush() {
	streamMu.Lock()
	defer streamMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Flush()
	}
}

// releaseStreams closes the console files BindStreams opened, flushing
// buffered output first. Externally redirected streams are not touched.
func releaseStreams() {
	streamMu.Lock()
	defer streamMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Flush()
		logWriter = nil
		log.SetOutput(os.Stderr)
	}

	for _, f := range []**os.File{&conin, &conout, &conerr} {
		if *f != nil {
			_ = (*f).Close()
			*f = nil
		}
	}
}

// redirected reports whether the stream already points at a disk file or
// a pipe, meaning the environment owns it and it must not be rebound.
func redirected(f *os.File) bool {
	h := windows.Handle(f.Fd())
	if h == 0 || h == windows.InvalidHandle {
		return false
	}

	t, err := windows.GetFileType(h)
	if err != nil {
		return false
	}

	return t == windows.FILE_TYPE_DISK || t == windows.FILE_TYPE_PIPE
}
