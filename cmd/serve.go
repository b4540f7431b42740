package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sampleapi/internal/config"
	"github.com/ziadkadry99/sampleapi/internal/logging"
	"github.com/ziadkadry99/sampleapi/internal/routes"
	"github.com/ziadkadry99/sampleapi/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the sample API on the configured port (3000 by default) and serves until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func addPortFlag(c *cobra.Command) {
	c.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger.Debug("config loaded", "path", cfgFile, "addr", cfg.Addr())

	srv := newServer(cfg, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}

// newServer builds the HTTP server from cfg and mounts the route table.
func newServer(cfg *config.Config, logger *slog.Logger) *server.Server {
	srv := server.New(server.Config{
		Host:              cfg.Host,
		Port:              cfg.Port,
		AllowAll:          cfg.AllowAllOrigins,
		AllowedOrigins:    cfg.AllowedOrigins,
		RequestTimeout:    cfg.RequestTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}, logger)

	routes.RegisterRoutes(srv.Router())
	return srv
}

func init() {
	addPortFlag(serveCmd)
	rootCmd.AddCommand(serveCmd)
}
