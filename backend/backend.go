package backend

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

const contentType = "application/json"

// InvokeEndpointAPI is the subset of the SageMaker runtime client used here.
type InvokeEndpointAPI interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

// Client sends prompts to a single named SageMaker inference endpoint.
// It holds no per-call state and is safe to reuse across invocations.
type Client struct {
	endpointName string
	api          InvokeEndpointAPI
}

// NewClient creates a Client for endpointName backed by api.
func NewClient(endpointName string, api InvokeEndpointAPI) *Client {
	return &Client{
		endpointName: endpointName,
		api:          api,
	}
}

// NewBackendClient loads AWS credentials from the default chain and creates
// a Client for endpointName. An empty region leaves region resolution to the SDK.
func NewBackendClient(ctx context.Context, endpointName, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("backend: loading aws config: %w", err)
	}

	return NewClient(endpointName, sagemakerruntime.NewFromConfig(awsCfg)), nil
}

// Endpoint returns the endpoint name requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpointName
}

// Invoke posts body to the endpoint and returns the response body. The call
// blocks until the endpoint answers or ctx is done.
func (c *Client) Invoke(ctx context.Context, body []byte) ([]byte, error) {
	out, err := c.api.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(c.endpointName),
		ContentType:  aws.String(contentType),
		Body:         body,
	})
	if err != nil {
		return nil, fmt.Errorf("backend: invoking endpoint %s: %w", c.endpointName, err)
	}

	log.Debugf("Endpoint %s answered with %d bytes", c.endpointName, len(out.Body))
	return out.Body, nil
}
