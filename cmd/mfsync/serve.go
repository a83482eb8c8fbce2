package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mfdash/internal/infrastructure/server"
)

type serveCmd struct {
	port   string
	static string
	data   string
	root   string
	dev    bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dataset and dashboard bundle over HTTP" }
func (*serveCmd) Usage() string {
	return `mfsync serve [-port <port>] [-static <dir>] [-data <path>] [-root <dir>] [-dev]

  Serves /data.json from the last sync (or a demonstration dataset when
  none exists), /api/refresh, /healthz, /metrics and, with -static, the
  built dashboard bundle.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "Listen port (overrides PORT).")
	f.StringVar(&c.static, "static", "", "Directory with the built dashboard (overrides DASHBOARD_STATIC_DIR).")
	f.StringVar(&c.data, "data", "", "Dataset path (overrides MF_OUTPUT_PATH).")
	f.StringVar(&c.root, "root", "", "Directory that relative dataset and bundle paths are resolved against.")
	f.BoolVar(&c.dev, "dev", false, "Human-readable debug logging.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(c.dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.port != "" {
		cfg.Server.Port = c.port
	}
	if c.static != "" {
		cfg.Server.StaticDir = c.static
	}
	if c.data != "" {
		cfg.Output.DataPath = c.data
	}
	resolvePaths(cfg, c.root)

	logger := newLogger(cfg)
	defer logger.Sync()

	srv, err := server.NewServer(cfg, monitoring.NewMetrics(), logger)
	if err != nil {
		logger.Error("Failed to create server", zap.Error(err))
		return subcommands.ExitFailure
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server error", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
