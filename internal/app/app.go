package app

import (
	"context"
	"fmt"
	"time"

	"tempwatch/internal/config"
	"tempwatch/internal/logging"
	"tempwatch/internal/refresh"
	"tempwatch/internal/state"
	"tempwatch/internal/ui"
)

// Options carry the command-line surface into the application. Zero values
// mean "not given"; anything set here overrides the config file.
type Options struct {
	ConfigPath string        // -config
	LogFile    string        // positional argument
	Interval   time.Duration // -refresh
	DebugLog   string        // -debug-log
}

// Run boots the tempwatch TUI and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = merge(cfg, opts)

	logger, closeLog, err := logging.Open(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("init debug log: %w", err)
	}
	defer closeLog()

	logger.Info().
		Str("log_file", cfg.LogFile).
		Dur("refresh_interval", cfg.RefreshInterval).
		Int("font_size", cfg.FontSize).
		Str("background", cfg.Background).
		Msg("starting")

	store := state.New(cfg.LogFile, state.Style{
		FontSize: cfg.FontSize,
		BgColor:  cfg.Background,
	})

	// The scheduler's first tick runs at Start, so the store holds a
	// reading (or its failure) before the first frame renders.
	sched := refresh.New(store, cfg.RefreshInterval, nil, logger.With().Str("component", "refresh").Logger())
	sched.Start(ctx)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Scheduler: sched,
		Interval:  cfg.RefreshInterval,
	})
}

// merge applies command-line overrides on top of the loaded config.
func merge(cfg config.Config, opts Options) config.Config {
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Interval > 0 {
		cfg.RefreshInterval = opts.Interval
	}
	if opts.DebugLog != "" {
		cfg.DebugLog = opts.DebugLog
	}
	return cfg
}
