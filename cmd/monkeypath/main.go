// SPDX-License-Identifier: MIT

// Command monkeypath plays and explains the Monkey Path puzzle levels.
//
// Usage:
//
//	monkeypath [flags] levels
//	monkeypath [flags] solve <level>
//	monkeypath [flags] teach <level>
//	monkeypath [flags] play <level> <node> <node>...
//	monkeypath [flags] progress [-reset]
//	monkeypath [flags] watch
//
// Settings come from MONKEYPATH_LEVELS, MONKEYPATH_DB,
// LOG_LEVEL and LOG_FORMAT; flags override them.
//
// Levels unlock in order: play refuses a level until the one before it is won.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/monkeypath/internal/config"
	"github.com/katalvlaran/monkeypath/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, logging.New(cfg.Logging)); err != nil {
		fmt.Fprintf(os.Stderr, "monkeypath: %v\n", err)
		stop()
		os.Exit(1)
	}
}
