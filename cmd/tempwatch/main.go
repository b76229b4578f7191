package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tempwatch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	interval := flag.Duration("refresh", 0, "refresh interval, e.g. 3m (optional, defaults to 3m)")
	debugLog := flag.String("debug-log", "", "write diagnostics to this file (optional)")
	flag.Usage = usage
	flag.Parse()

	if *interval < 0 {
		fmt.Fprintln(os.Stderr, "tempwatch: refresh interval must be positive")
		return 2
	}
	if flag.NArg() > 1 {
		usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		LogFile:    flag.Arg(0),
		DebugLog:   *debugLog,
	}
	if *interval > 0 {
		opts.Interval = *interval
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tempwatch: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tempwatch [flags] [logfile]")
	flag.PrintDefaults()
}
