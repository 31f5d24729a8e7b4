package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrediction is returned when the endpoint answers with an empty array.
	ErrEmptyPrediction = errors.New("inference: endpoint returned no predictions")
	// ErrMissingGeneratedText is returned when the first prediction has no generated_text.
	ErrMissingGeneratedText = errors.New("inference: prediction has no generated_text")
)

// DefaultParameters returns the sampling settings the endpoint is tuned for.
func DefaultParameters() Parameters {
	return Parameters{
		DoSample:          true,
		TopP:              0.7,
		TopK:              50,
		Temperature:       0.3,
		MaxNewTokens:      512,
		RepetitionPenalty: 1.03,
	}
}

// Invoker sends a JSON body to the inference endpoint and returns the raw
// response body.
type Invoker interface {
	Invoke(ctx context.Context, body []byte) ([]byte, error)
	Endpoint() string
}

// Generator turns a prompt into generated text using a remote endpoint.
type Generator struct {
	invoker    Invoker
	parameters Parameters
}

// NewGenerator creates a Generator that sends params with every prompt.
func NewGenerator(invoker Invoker, params Parameters) *Generator {
	return &Generator{
		invoker:    invoker,
		parameters: params,
	}
}

// Endpoint returns the name of the endpoint prompts are sent to.
func (g *Generator) Endpoint() string {
	return g.invoker.Endpoint()
}

// Generate makes one blocking call to the endpoint and returns the first
// generated text. A nil query is sent as a null input.
func (g *Generator) Generate(ctx context.Context, query *string) (string, error) {
	body, err := json.Marshal(NewPayload(query, g.parameters))
	if err != nil {
		return "", fmt.Errorf("inference: encoding payload: %w", err)
	}

	resp, err := g.invoker.Invoke(ctx, body)
	if err != nil {
		return "", err
	}

	return DecodeGeneratedText(resp)
}

// NewPayload builds the request body for a single prompt.
func NewPayload(query *string, params Parameters) Payload {
	return Payload{
		Inputs:     query,
		Parameters: params,
	}
}

// DecodeGeneratedText reads the generated_text of the first prediction in
// an endpoint response.
func DecodeGeneratedText(body []byte) (string, error) {
	var predictions []Prediction
	if err := json.Unmarshal(body, &predictions); err != nil {
		return "", fmt.Errorf("inference: decoding response: %w", err)
	}
	if len(predictions) == 0 {
		return "", ErrEmptyPrediction
	}
	if predictions[0].GeneratedText == nil {
		return "", ErrMissingGeneratedText
	}
	return *predictions[0].GeneratedText, nil
}
