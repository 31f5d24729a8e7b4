package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// Generator produces text for a prompt. A nil prompt means the caller sent none.
type Generator interface {
	Generate(ctx context.Context, query *string) (string, error)
	Endpoint() string
}

// Handler answers API Gateway proxy events with text from the inference endpoint.
type Handler struct {
	generator Generator
}

// NewHandler creates a new instance of Handler
func NewHandler(g Generator) *Handler {
	return &Handler{
		generator: g,
	}
}

// Handle runs one invocation: read the query, generate, and wrap the text in
// a 200 response. Any failure is returned as an error so the runtime reports
// the invocation as failed; no other status code is ever produced here.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()
	query := queryParam(event.QueryStringParameters)
	entry := log.WithFields(logrus.Fields{
		"request_id":    requestID(ctx),
		"endpoint":      h.generator.Endpoint(),
		"query_present": query != nil,
	})
	entry.Debug("Invocation started")

	text, err := h.generator.Generate(ctx, query)
	if err != nil {
		entry.WithError(err).Error("Invocation failed")
		return events.APIGatewayProxyResponse{}, err
	}

	body, err := encodeBody(text)
	if err != nil {
		entry.WithError(err).Error("Invocation failed")
		return events.APIGatewayProxyResponse{}, err
	}

	entry.WithField("duration", time.Since(start).String()).Info("Invocation complete")
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       body,
	}, nil
}

// queryParam returns the "query" parameter, or nil when it was not sent.
func queryParam(params map[string]string) *string {
	q, ok := params["query"]
	if !ok {
		return nil
	}
	return &q
}

// encodeBody renders text as a JSON string without escaping HTML characters.
func encodeBody(text string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", fmt.Errorf("handler: encoding body: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
