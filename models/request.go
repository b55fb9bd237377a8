package models

import "net/http"

// RequestSpec fully describes one logical API call.
type RequestSpec struct {
	// Method is the HTTP method; GET is assumed when empty.
	Method string

	// Path is resolved against the configured API base URL.
	Path string

	// Query holds URL query parameters.
	Query map[string]string

	// Body is JSON-encoded unless it already is []byte or json.RawMessage.
	Body any

	// Headers are added on top of the transport's common headers.
	Headers map[string]string

	// Anonymous suppresses the Authorization header even when a credential
	// is available (magic-link and refresh endpoints).
	Anonymous bool
}

// MethodOrDefault returns Method, or GET when it is empty.
func (r RequestSpec) MethodOrDefault() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}
