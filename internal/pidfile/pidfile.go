// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package pidfile records daemon pids in /run/camio/pids
package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
)

const Dir = "/run/camio/pids"

func New(name string) (string, error) {
	if err := os.MkdirAll(Dir, 0775); err != nil {
		return "", err
	}
	fn := filepath.Join(Dir, name)
	f, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	defer f.Close()
	fmt.Fprintln(f, os.Getpid())
	return fn, nil
}

func RemoveAll() {
	pids, err := filepath.Glob(filepath.Join(Dir, "*"))
	if err == nil {
		for _, fn := range pids {
			os.Remove(fn)
		}
		os.Remove(Dir)
	}
}
