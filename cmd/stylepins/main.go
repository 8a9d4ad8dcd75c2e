// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the StylePins catalog CLI.
// It loads configuration, opens the configured storage backend, hydrates
// the catalog and runs one admin or browse command against it.
package main

import (
	"os"
)

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
