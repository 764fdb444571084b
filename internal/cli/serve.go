package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/badgegen/pkg/observability"
	"github.com/matzehuels/badgegen/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve badges over HTTP",
		Long: `Run the badge HTTP API until interrupted.

Endpoints:
  GET /v1/health
  GET /v1/badges/dependency?name=react&registry=npm&logo=react
  GET /v1/badges/node/{owner}/{repo}/{pkg}?env=dev&logo=vue.js
  GET /v1/badges/go/{owner}/{repo}`,
		Example: `  badgegen serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			observability.SetHTTPHooks(logHooks{logger: logger})

			srv := server.New(server.Options{Logger: logger})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return cmd
}
