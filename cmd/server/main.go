package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jagritimaurya743-source/college-society-management/internal/api"
	"github.com/jagritimaurya743-source/college-society-management/internal/chat"
	"github.com/jagritimaurya743-source/college-society-management/internal/config"
	"github.com/jagritimaurya743-source/college-society-management/internal/logging"
	"github.com/jagritimaurya743-source/college-society-management/internal/seed"
	"github.com/jagritimaurya743-source/college-society-management/internal/storage/memory"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "society-server",
		Short:        "Read-only API for the college society dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "validate-seed [path]",
		Short: "Load and validate a seed file (embedded data when no path is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			ds, err := seed.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d societies, %d events, %d activities\n",
				len(ds.Societies), len(ds.Events), len(ds.Activities))
			return nil
		},
	})

	return root
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ds, err := seed.Load(cfg.SeedPath)
	if err != nil {
		logger.Error("load seed", zap.Error(err))
		return err
	}
	logger.Info("dataset loaded",
		zap.Int("societies", len(ds.Societies)),
		zap.Int("events", len(ds.Events)),
		zap.String("source", seedSource(cfg.SeedPath)))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := api.NewServer(api.Config{
		Addr:         cfg.Addr,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, memory.NewStore(ds), chat.NewAssistant(cfg.ChatDelay), logger, reg)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

func seedSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
