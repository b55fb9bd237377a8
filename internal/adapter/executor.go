// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/repair-minder-sync/models"
)

// Executor is the default [RequestExecutor].
type Executor struct {
	transport   Transport
	credentials CredentialProvider
	network     ReachabilityChecker
}

// NewExecutor wires an executor. credentials and network may be nil, meaning
// "never authenticated" and "always reachable" respectively.
func NewExecutor(transport Transport, credentials CredentialProvider, network ReachabilityChecker) *Executor {
	return &Executor{transport: transport, credentials: credentials, network: network}
}

// Do performs spec and returns the body of a 2xx response, or a
// [*RequestError].
func (e *Executor) Do(ctx context.Context, spec models.RequestSpec) ([]byte, error) {
	if e.network != nil && !e.network.IsReachable() {
		return nil, &RequestError{Kind: KindOffline}
	}

	body, err := encodeBody(spec.Body)
	if err != nil {
		return nil, &RequestError{Kind: KindEncoding, Err: err}
	}

	headers := make(map[string]string, len(spec.Headers)+1)
	for k, v := range spec.Headers {
		headers[k] = v
	}
	if !spec.Anonymous && e.credentials != nil {
		if token, ok := e.credentials.CurrentToken(); ok && token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}

	resp, err := e.transport.Execute(ctx, TransportRequest{
		Method:  spec.MethodOrDefault(),
		Path:    spec.Path,
		Query:   spec.Query,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Err: err}
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// RequestVoid performs spec and discards a successful body. An envelope
// reporting success=false is still a rejection.
func (e *Executor) RequestVoid(ctx context.Context, spec models.RequestSpec) error {
	body, err := e.Do(ctx, spec)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var envelope models.APIResponse[json.RawMessage]
	if json.Unmarshal(body, &envelope) == nil && !envelope.Success && envelope.Reason() != "" {
		return &RequestError{Kind: KindRejected, StatusCode: http.StatusOK, Message: envelope.Reason()}
	}
	return nil
}

// Request performs spec and decodes the "data" member of the response
// envelope into T.
func Request[T any](ctx context.Context, exec RequestExecutor, spec models.RequestSpec) (T, error) {
	var zero T

	body, err := exec.Do(ctx, spec)
	if err != nil {
		return zero, err
	}

	var envelope models.APIResponse[T]
	if err = json.Unmarshal(body, &envelope); err != nil {
		return zero, &RequestError{Kind: KindDecoding, StatusCode: http.StatusOK, Err: err}
	}

	if !envelope.Success || envelope.Data == nil {
		message := envelope.Reason()
		if message == "" {
			message = "request failed"
		}
		return zero, &RequestError{Kind: KindRejected, StatusCode: http.StatusOK, Message: message}
	}

	return *envelope.Data, nil
}

// RequestDirect performs spec and decodes the whole body into T.
func RequestDirect[T any](ctx context.Context, exec RequestExecutor, spec models.RequestSpec) (T, error) {
	var result T

	body, err := exec.Do(ctx, spec)
	if err != nil {
		return result, err
	}

	if err = json.Unmarshal(body, &result); err != nil {
		return result, &RequestError{Kind: KindDecoding, StatusCode: http.StatusOK, Err: err}
	}

	return result, nil
}

func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		return json.Marshal(v)
	}
}
