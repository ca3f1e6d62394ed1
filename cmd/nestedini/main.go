// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// nestedini reads and edits INI files with dotted, nested sections.
//
// Usage:
//
//	nestedini get -f settings.ini Server.HTTP Port
//	nestedini set -f settings.ini Server.HTTP Port 8080
//	nestedini sections -f settings.ini
//	nestedini dump -f settings.ini
//	nestedini check -f settings.ini
//
// The file defaults to $NESTEDINI_FILE. Setting NESTEDINI_VERBOSE=1 is the
// same as passing --verbose.
package main

import (
	"context"
	"os"
	"os/signal"

	"zombiezen.com/go/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}
