package cli

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/toolbench/toolbench/internal/server"
)

func newServeCommand(state *cliState) *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diff and color API over HTTP",
		Args:  withUsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.config(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				if port < 0 || port > 65535 {
					return usageErrorf("--port must be in 0-65535 (got %d)", port)
				}
				cfg.Server.Port = port
			}

			srv, err := server.New(cfg, Version)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, func(addr net.Addr) {
				fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", addr)
				if cfg.Server.Host != "localhost" && cfg.Server.Host != "127.0.0.1" {
					log.Warn().Str("host", cfg.Server.Host).Msg("listening on a non-loopback address")
				}
				log.Info().Str("addr", addr.String()).Str("version", Version).Msg("server started")
			})
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (default from config: localhost)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config: 8080; 0 picks a free port)")
	return cmd
}
