package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBody bounds request bodies accepted by the control API.
const MaxRequestBody = 1 << 20

// ErrBodyTooLarge is returned by DecodeJSON for bodies over MaxRequestBody.
var ErrBodyTooLarge = errors.New("request body too large")

// WriteJSON writes data as an application/json response with statusCode.
// A value that cannot be marshalled produces a plain 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": message} with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"error": message}, statusCode)
}

// DecodeJSON decodes a single JSON value from r into v. Trailing data after
// the value is rejected.
func DecodeJSON(r io.Reader, v any) error {
	limited := &io.LimitedReader{R: r, N: MaxRequestBody + 1}
	dec := json.NewDecoder(limited)
	if err := dec.Decode(v); err != nil {
		if limited.N <= 0 {
			return ErrBodyTooLarge
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	if limited.N <= 0 {
		return ErrBodyTooLarge
	}
	return nil
}
