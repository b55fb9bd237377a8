package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/models"
)

// Field names accepted by MutationValidator.Validate.
const (
	FieldEntityKey = "entity_key"
	FieldKind      = "kind"
	FieldPayload   = "payload"
	// FieldID only applies to stored mutations.
	FieldID = "id"
)

var (
	requestFields = []string{FieldEntityKey, FieldKind, FieldPayload}
	storedFields  = []string{FieldID, FieldEntityKey, FieldKind, FieldPayload}
)

// MutationValidator validates enqueue requests and stored mutations.
type MutationValidator struct{}

// NewMutationValidator returns a Validator for mutation values.
func NewMutationValidator() Validator {
	return &MutationValidator{}
}

// Validate supports models.EnqueueRequest and models.PendingMutation, as
// values or pointers. Without fields every check for the type runs.
func (v *MutationValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EnqueueRequest:
		return v.validate(value.EntityKey, value.Kind, value.Payload, "", withDefault(fields, requestFields))
	case *models.EnqueueRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validate(value.EntityKey, value.Kind, value.Payload, "", withDefault(fields, requestFields))
	case models.PendingMutation:
		return v.validate(value.Key, value.Kind, value.Payload, value.ID, withDefault(fields, storedFields))
	case *models.PendingMutation:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validate(value.Key, value.Kind, value.Payload, value.ID, withDefault(fields, storedFields))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *MutationValidator) validate(key models.EntityKey, kind models.MutationKind, payload json.RawMessage, id string, fields []string) error {
	for _, field := range fields {
		var err error
		switch field {
		case FieldEntityKey:
			err = key.Validate()
		case FieldKind:
			err = kind.CheckTarget(key)
		case FieldPayload:
			err = validatePayload(payload)
		case FieldID:
			if id == "" {
				err = ErrEmptyID
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// validatePayload accepts an absent payload, JSON null or a JSON object.
func validatePayload(payload json.RawMessage) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidPayload
	}
	return nil
}

func withDefault(fields, defaults []string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
