package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPayload = errors.New("payload must be a JSON object")
	ErrEmptyID        = errors.New("mutation id is required")
)
