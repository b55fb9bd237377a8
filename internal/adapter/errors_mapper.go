package adapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/repair-minder-sync/models"
)

// mapHTTPError classifies a non-2xx response. It returns nil for 2xx.
func mapHTTPError(resp TransportResponse) error {
	status := resp.StatusCode
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp.Body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &RequestError{Kind: KindUnauthorized, StatusCode: status, Message: message}
	case status == http.StatusTooManyRequests:
		return &RequestError{
			Kind:       KindRateLimited,
			StatusCode: status,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    message,
		}
	case status >= http.StatusInternalServerError:
		return &RequestError{Kind: KindServerError, StatusCode: status, Message: message}
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return &RequestError{Kind: KindRejected, StatusCode: status, Message: message}
	}
}

// serverMessage pulls the reason out of an error envelope; plain-text
// bodies are returned trimmed.
func serverMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var envelope models.APIResponse[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err == nil {
		return envelope.Reason()
	}

	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}

// parseRetryAfter accepts delay-seconds only; HTTP-date values are ignored.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
