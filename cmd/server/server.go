package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/equinix-labs/otel-init-go/otelinit"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rootCmd "github.com/metal-toolbox/user-echo/cmd"
	"github.com/metal-toolbox/user-echo/internal/app"
	"github.com/metal-toolbox/user-echo/internal/metrics"
	"github.com/metal-toolbox/user-echo/internal/version"
	"github.com/metal-toolbox/user-echo/pkg/api/routes"
)

var shutdownTimeout = 10 * time.Second

// install server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run API service",
	Run: func(c *cobra.Command, args []string) {
		cfg, err := app.LoadConfiguration(rootCmd.CfgFile)
		if err != nil {
			log.Fatalf("loading configuration: %s", err.Error())
		}

		logger := app.GetLogger(cfg.DeveloperMode)
		//nolint:errcheck
		defer logger.Sync()

		ctx, appCancel := context.WithCancel(c.Context())
		defer appCancel()

		a := app.NewApp(ctx, cfg, logger)

		metrics.ListenAndServe(cfg.MetricsAddress, logger)

		// the ignored parameter here is a context annotated with otel-init-go configuration
		_, otelShutdown := otelinit.InitOpenTelemetry(c.Context(), app.AppName)

		logger.Info("app initialized",
			zap.Object("version", version.Current()),
			zap.String("listen-address", cfg.ListenAddress),
			zap.Duration("request-timeout", cfg.RequestTimeout),
		)

		srv := routes.ComposeHTTPServer(a)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("error serving API",
					zap.Error(err),
				)
			}
		}()

		a.WaitForSignal()
		logger.Info("signaled to terminate")
		appCancel()

		// call server shutdown with timeout
		ctx, cancel := context.WithTimeout(c.Context(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Fatal("server shutdown error",
				zap.Error(err),
			)
		}
		otelShutdown(ctx)
		logger.Info("OK, done.")
	},
}

// install command flags
func init() {
	rootCmd.RootCmd.AddCommand(serverCmd)
}
