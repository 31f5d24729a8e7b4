package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"querylambda/backend"
	"querylambda/config"
	"querylambda/handler"
	"querylambda/inference"
	"querylambda/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "querylambda",
		Short:        "Forward a query to a SageMaker text-generation endpoint",
		Long:         "Runs under the AWS Lambda runtime by default. Use serve or invoke to run outside Lambda.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := setup(cmd.Context(), true)
			if err != nil {
				return err
			}
			lambda.Start(h.Handle)
			return nil
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(), newInvokeCmd())
	return root
}

// setup loads configuration, configures logging and builds the handler.
// Everything it creates is reused across invocations.
func setup(ctx context.Context, jsonLogs bool) (*handler.Handler, error) {
	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel, config.CliArgs.Debug)
	if err != nil {
		return nil, err
	}
	logging.InitLogger(level, jsonLogs && cfg.JSONLogs())
	log := logging.GetLogger()

	client, err := backend.NewBackendClient(ctx, cfg.EndpointName, cfg.Region)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using endpoint %s", client.Endpoint())

	return handler.NewHandler(inference.NewGenerator(client, cfg.Parameters)), nil
}
