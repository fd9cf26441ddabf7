package models

import "fmt"

// Defaults applied when the echo event omits a field
const (
	DefaultEchoMessage   = "world"
	DefaultEchoFirstName = "Anonymous"
)

// EchoRequest carries the two optional greeting fields
type EchoRequest struct {
	Message   string `json:"message"`
	FirstName string `json:"firstName"`
}

// Greeting formats the echo text
func (r EchoRequest) Greeting() string {
	return fmt.Sprintf("Hello, %s! Your name is %s", r.Message, r.FirstName)
}

// EchoResponse wraps the greeting in the response envelope
type EchoResponse struct {
	Response string `json:"response"`
}

// TableListResponse wraps the table names found by the diagnostic lister
type TableListResponse struct {
	Response []string `json:"response"`
}

// NewTableListResponse never returns a nil slice so the envelope encodes as [] rather than null
func NewTableListResponse(names []string) *TableListResponse {
	if names == nil {
		names = []string{}
	}
	return &TableListResponse{Response: names}
}
