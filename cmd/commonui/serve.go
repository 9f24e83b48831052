package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/internal/tracing"
	"github.com/vango-dev/commonui/pkg/server"
)

func serveCmd(load configLoader) *cobra.Command {
	var (
		port      int
		host      string
		platform  string
		noMetrics bool
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the button gallery",
		Long: `Serve the button gallery over HTTP.

Routes:
  GET /          full gallery (?platform=mobile)
  GET /button    one button (?type=Danger&label=Delete&small=true)
  GET /variants  supported variants as JSON
  GET /healthz   liveness
  GET /metrics   Prometheus metrics

Examples:
  commonui serve
  commonui serve --port=8080 --platform mobile
  commonui serve --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if trace {
				cfg.Tracing.Enabled = true
			}
			if noMetrics {
				off := false
				cfg.Server.Metrics = &off
			}
			p, err := platformFor(platform, cfg)
			if err != nil {
				return err
			}

			provider, err := tracing.NewProvider(tracing.Config{
				Enabled:  cfg.Tracing.Enabled,
				Exporter: cfg.Tracing.Exporter,
				Writer:   cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer provider.Shutdown(context.Background())

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			srv := server.New(
				server.WithAddress(cfg.Address()),
				server.WithPlatform(p),
				server.WithMetrics(cfg.MetricsEnabled()),
				server.WithLogger(logger),
				server.WithTracer(provider.Tracer()),
			)

			success(cmd, "Gallery at http://%s", cfg.Address())
			if cfg.MetricsEnabled() {
				info(cmd, "Metrics at http://%s/metrics", cfg.Address())
			}
			if provider.Enabled() {
				info(cmd, "Tracing spans to %s", cfg.Tracing.Exporter)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "P", 0, "Port to listen on (default from commonui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from commonui.json)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Default style platform")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Do not expose /metrics")
	cmd.Flags().BoolVar(&trace, "trace", false, "Record button.render spans")

	return cmd
}
