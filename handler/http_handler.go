package handler

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// HTTPHandler serves a Handler over plain HTTP for local runs. It stands in
// for API Gateway and the Lambda runtime.
type HTTPHandler struct {
	Handler *Handler
}

// NewHTTPHandler creates a new instance of HTTPHandler
func NewHTTPHandler(h *Handler) *HTTPHandler {
	return &HTTPHandler{
		Handler: h,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	ctx := withRequestID(r.Context(), id)

	resp, err := h.Handler.Handle(ctx, toEvent(r))
	if err != nil {
		// The Lambda runtime would report this as a failed invocation.
		logAndReturnError(w, r, "Bad Gateway: invocation failed", http.StatusBadGateway, fmt.Sprintf("Invocation %s failed: %s", id, err))
		return
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write([]byte(resp.Body))
	logRequest(r, id, resp.StatusCode)
}

// toEvent converts an HTTP request into the proxy event API Gateway would
// deliver. Only the first value of each query parameter is kept.
func toEvent(r *http.Request) events.APIGatewayProxyRequest {
	var params map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		params = make(map[string]string, len(values))
		for key, v := range values {
			params[key] = v[0]
		}
	}
	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		QueryStringParameters: params,
	}
}
