package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"selector-grader/config"
	appfx "selector-grader/internal/app/fx"
	"selector-grader/internal/app/health"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	port := cfg.AppPort

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grading over HTTP (POST /v1/grade)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port <= 0 || port > 65535 {
				return fmt.Errorf("%w: invalid --port %d", errUsage, port)
			}

			app := fx.New(
				fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: logger}
				}),
				appfx.ServeModule,
				fx.Supply(health.Version(version)),
				fx.Decorate(func(c *config.Config) *config.Config {
					out := *c
					out.AppPort = port
					return &out
				}),
			)
			if err := app.Err(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return err
			}

			<-ctx.Done()

			stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancelStop()
			return app.Stop(stopCtx)
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", port, "Port to listen on")

	return serveCmd
}
