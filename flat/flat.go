// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package flat exposes INI files through integer handles and plain string,
// int and float calls. It is meant for callers that cannot hold Go values,
// such as a cgo export layer or a scripting bridge.
package flat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yourbase/nestedini/ini"
)

// A Handle identifies a file opened with Open. The zero Handle is never valid.
type Handle uint32

// ErrBadHandle is returned for handles that were never opened or have been
// closed.
var ErrBadHandle = errors.New("invalid ini handle")

var registry = struct {
	mu    sync.Mutex
	next  Handle
	files map[Handle]*ini.File
}{
	files: make(map[Handle]*ini.File),
}

// Open opens the INI file at path and returns a handle to it.
func Open(path string) (Handle, error) {
	f, err := ini.Open(path)
	if err != nil {
		return 0, err
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.next++
	h := registry.next
	registry.files[h] = f
	return h, nil
}

// Close releases the file behind *h and sets *h to zero. Closing a zero or
// already closed handle does nothing.
func Close(h *Handle) {
	registry.mu.Lock()
	delete(registry.files, *h)
	registry.mu.Unlock()
	*h = 0
}

func lookup(h Handle) (*ini.File, error) {
	registry.mu.Lock()
	f := registry.files[h]
	registry.mu.Unlock()
	if f == nil {
		return nil, fmt.Errorf("handle %d: %w", h, ErrBadHandle)
	}
	return f, nil
}

// Set stores value under key in section and rewrites the file.
func Set(h Handle, section, key, value string) error {
	f, err := lookup(h)
	if err != nil {
		return err
	}
	return ini.Set(f, section, key, value)
}

// Gets copies the value of key in section into out, truncating it to len(out)
// bytes, and returns the filled prefix of out. If the entry is missing or
// empty, out is left untouched and an empty slice is returned.
func Gets(h Handle, section, key string, out []byte) ([]byte, error) {
	f, err := lookup(h)
	if err != nil {
		return out[:0], err
	}
	v, err := ini.Get[string](f, section, key)
	if err != nil {
		return out[:0], err
	}
	n := copy(out, v)
	return out[:n], nil
}

// Geti returns the value of key in section as a 32-bit integer, or 0 if it is
// missing. Values outside the int32 range are an error wrapping
// strconv.ErrRange.
func Geti(h Handle, section, key string) (int32, error) {
	f, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return ini.Get[int32](f, section, key)
}

// Getf returns the value of key in section as a float32, or 0 if it is
// missing.
func Getf(h Handle, section, key string) (float32, error) {
	f, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return ini.Get[float32](f, section, key)
}
