// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the populater CLI. It generates the
// Swedish copy and design theme for a new blog and stores it as one row of
// the website_data table, printing the new row's id on stdout.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code. Logs
// go to stderr; stdout carries only command output.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	setLogger(stderr, slog.LevelInfo)

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("populater failed", "error", err)
		return 1
	}
	return 0
}

// setLogger installs a text handler on w as the default logger.
func setLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
