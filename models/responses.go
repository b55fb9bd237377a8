package models

// APIResponse is the envelope every repair-shop API endpoint wraps its
// payload in.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Reason returns the most specific server-provided explanation.
func (r APIResponse[T]) Reason() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

// EmptyResponse is the payload type of endpoints without response data.
type EmptyResponse struct{}
