package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ifancyabroad/the-nightingames/internal/config"
	"github.com/ifancyabroad/the-nightingames/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only HTTP API",
	Long:  "Serve leaderboards, player profiles, insights, and the dashboard over HTTP. Configuration comes from the environment (HTTP_ADDR, DB_PATH, LOG_LEVEL); flags override it.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}
	if cmd.Flags().Changed("db") || cfg.DBPath == "" {
		cfg.DBPath = dbPath
	} else {
		dbPath = cfg.DBPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to sqlite", "path", dbPath)

	srv := server.New(cfg.HTTPAddr, logger, db)

	g, gctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
