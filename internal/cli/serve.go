package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/web"
)

// NewServeCmd creates the serve command, which serves the list to browsers.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the country list over HTTP",
		Long: `Loads the country list once in the background and serves it on --addr.
GET / renders the page, /api/countries returns JSON, /healthz reports the load
status and /metrics exposes Prometheus metrics.`,
		Example: `  # Serve on the configured address
  countrylist serve

  # Serve on localhost only
  countrylist serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			loader := country.NewLoader(cfg.Source.Endpoint, cfg.Timeout())
			metrics := web.NewMetrics()
			store := web.NewStore(loader.Load, metrics, logger)
			srv := web.NewServer(store, metrics, logger)

			cmd.Printf("Serving countries on %s\n", addr)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
