package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/dreamteacher/internal/gateway"
	"github.com/abhisek/dreamteacher/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the completion gateway HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")

		// JSON logs unless the environment or --log-mode says otherwise.
		mode := "prod"
		if os.Getenv("DREAMTEACHER_LOG_MODE") != "" {
			mode = cfg.Log.Mode
		}
		if cmd.Flags().Changed("log-mode") {
			mode, _ = cmd.Flags().GetString("log-mode")
		}
		log, err := logging.New(logging.Options{Mode: mode, Level: cfg.Log.Level})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		repo, closeRepo := openEventRepo(cfg, log)
		defer closeRepo()

		// The server always completes in-process; --gateway is a client option.
		completer := newService(ctx, cfg, repo, log)
		router := gateway.NewRouter(gateway.NewHandler(completer, log), gateway.RouterOptions{
			AllowOrigins: cfg.AllowOrigins,
			Debug:        debug,
		})

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("gateway listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port or host:port to listen on (overrides DREAMTEACHER_PORT)")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
	serveCmd.Flags().String("log-mode", "", "Log format: prod (JSON) or dev (console)")
}
