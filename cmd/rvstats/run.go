package main

import (
	"context"

	"github.com/example/rv-stats/internal/config"
	"github.com/example/rv-stats/internal/logger"
	"github.com/example/rv-stats/internal/pipeline"
	"github.com/spf13/cobra"
)

// load reads the config, sets up logging and runs the stats pipeline on path.
func load(cmd *cobra.Command, opts *rootOptions, path string) (*config.Config, *pipeline.Result, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logger.New(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx, log)

	res, err := pipeline.Run(ctx, path, pipeline.OptionsFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}
