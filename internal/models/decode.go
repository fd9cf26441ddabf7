package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Event names used in decode errors
const (
	EventAuthorization = "authorization"
	EventEcho          = "echo"
)

// ErrMalformedEvent is wrapped by every DecodeError
var ErrMalformedEvent = errors.New("malformed event")

// DecodeError reports an event that could not be turned into a typed request
type DecodeError struct {
	Event  string   // Event kind being decoded
	Fields []string // Fields that failed validation, if any
	Err    error    // Underlying error
}

func (e *DecodeError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("decode %s event: invalid fields [%s]: %v", e.Event, strings.Join(e.Fields, ", "), e.Err)
	}
	return fmt.Sprintf("decode %s event: %v", e.Event, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrMalformedEvent, e.Err}
}

// IsDecodeError returns true if err was produced while decoding an event
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// authorizationEvent mirrors AuthorizationRequest with pointer fields so that
// an absent or null field can be told apart from a zero value.
type authorizationEvent struct {
	Token              *string                    `json:"token" validate:"required"`
	SignatureVerified  *bool                      `json:"signatureVerified" validate:"required"`
	Protocols          []*string                  `json:"protocols" validate:"required"`
	ProtocolData       json.RawMessage            `json:"protocolData" validate:"required"`
	ConnectionMetadata map[string]json.RawMessage `json:"connectionMetadata" validate:"required"`
}

// DecodeAuthorizationRequest parses a custom authorizer event. Every field is
// required; wrong shapes are rejected rather than coerced.
func DecodeAuthorizationRequest(raw json.RawMessage) (*AuthorizationRequest, error) {
	var event authorizationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, &DecodeError{Event: EventAuthorization, Err: err}
	}

	if err := validate.Struct(&event); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, &DecodeError{
				Event:  EventAuthorization,
				Fields: failedFields(validationErrors),
				Err:    errors.New("required field missing or null"),
			}
		}
		return nil, &DecodeError{Event: EventAuthorization, Err: err}
	}

	protocols := make([]string, 0, len(event.Protocols))
	for i, token := range event.Protocols {
		if token == nil {
			return nil, &DecodeError{
				Event:  EventAuthorization,
				Fields: []string{"protocols"},
				Err:    fmt.Errorf("protocols[%d] is null", i),
			}
		}
		protocols = append(protocols, *token)
	}

	return &AuthorizationRequest{
		Token:              *event.Token,
		SignatureVerified:  *event.SignatureVerified,
		Protocols:          protocols,
		ProtocolData:       event.ProtocolData,
		ConnectionMetadata: event.ConnectionMetadata,
	}, nil
}

// DecodeEchoRequest parses an echo event. It never fails: a missing, null or
// non-string field, or an event that is not an object, yields the default.
func DecodeEchoRequest(raw json.RawMessage) EchoRequest {
	req := EchoRequest{
		Message:   DefaultEchoMessage,
		FirstName: DefaultEchoFirstName,
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return req
	}

	req.Message = optionalString(fields, "message", DefaultEchoMessage)
	req.FirstName = optionalString(fields, "firstName", DefaultEchoFirstName)
	return req
}

func optionalString(fields map[string]json.RawMessage, key, fallback string) string {
	raw, ok := fields[key]
	if !ok {
		return fallback
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil || value == nil {
		return fallback
	}
	return *value
}

func failedFields(validationErrors validator.ValidationErrors) []string {
	fields := make([]string, 0, len(validationErrors))
	for _, err := range validationErrors {
		fields = append(fields, err.Field())
	}
	return fields
}
