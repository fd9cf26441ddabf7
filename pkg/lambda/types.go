package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPayload is returned when a payload is not valid JSON for the handler's event type
var ErrInvalidPayload = errors.New("invalid payload")

// HandlerFunc is a function handler taking the raw event payload
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Adapt turns a typed handler into a HandlerFunc by decoding the payload into TIn
func Adapt[TIn any, TOut any](handler func(context.Context, TIn) (TOut, error)) HandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var event TIn
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return handler(ctx, event)
	}
}

// Registry maps function names to their handlers
type Registry map[string]HandlerFunc

// Names returns the registered function names in sorted order
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named function with payload
func (r Registry) Invoke(ctx context.Context, name string, payload json.RawMessage) (any, error) {
	handler, ok := r[name]
	if !ok {
		return nil, &FunctionNotFoundError{Name: name}
	}
	return handler(ctx, payload)
}

// FunctionNotFoundError is returned when invoking an unregistered function
type FunctionNotFoundError struct {
	Name string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function not found: %s", e.Name)
}
