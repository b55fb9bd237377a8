package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

type httpTransport struct {
	client *utils.HTTPClient
}

// NewHTTPTransport constructs the resty-backed [Transport]. It normalises
// the base URL from adapterCfg.HTTPAddress and applies the request timeout
// and User-Agent to every exchange.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter) (Transport, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: adapterCfg.UserAgent,
	})

	return &httpTransport{client: client}, nil
}


// Execute implements [Transport].
func (h *httpTransport) Execute(ctx context.Context, req TransportRequest) (TransportResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetQueryParams(req.Query)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		r.SetHeader(traceIDHeader, traceID)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return TransportResponse{}, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	return TransportResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
