package main

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"
)

func newInvokeCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run a single invocation and print the handler response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := setup(cmd.Context(), false)
			if err != nil {
				return err
			}

			resp, err := h.Handle(cmd.Context(), invokeEvent(query, cmd.Flags().Changed("query")))
			if err != nil {
				return err
			}

			out, err := json.Marshal(responseEnvelope{StatusCode: resp.StatusCode, Body: resp.Body})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Prompt to send; omit to send no query at all")
	return cmd
}

// responseEnvelope is the handler response as API Gateway sees it.
type responseEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func invokeEvent(query string, set bool) events.APIGatewayProxyRequest {
	if !set {
		return events.APIGatewayProxyRequest{}
	}
	return events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"query": query},
	}
}
