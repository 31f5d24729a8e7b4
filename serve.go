package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"querylambda/config"
	"querylambda/handler"
	"querylambda/logging"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the handler over plain HTTP for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := setup(cmd.Context(), false)
			if err != nil {
				return err
			}
			log := logging.GetLogger()

			addr := listen
			if addr == "" {
				addr = config.GetConfig().ListenAddress
			}

			// Define the server
			server := &http.Server{
				Addr:    addr,
				Handler: handler.NewHTTPHandler(h),
			}

			log.Infof("Starting server on %s", addr)
			// Start listening and serving
			if err := server.ListenAndServe(); err != nil {
				log.Errorf("Server failed to start: %v", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (overrides listen_address)")
	return cmd
}
