package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-locsheet/internal/server"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP service",
		Long: `Serve POST /api/convert (multipart form with "file", "direction" and an
optional "format") and GET /healthz until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger := getLogger(cmd.Context())

			srv, err := server.New(server.Config{
				Addr:           cfg.Addr,
				MaxUploadBytes: cfg.MaxUploadBytes,
				Options:        cfg.ConverterOptions(logger),
				Logger:         logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")

	return cmd
}
