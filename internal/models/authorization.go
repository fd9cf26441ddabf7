package models

import (
	"encoding/json"
)

// IAM policy language constants
const (
	PolicyVersion = "2012-10-17"
	EffectAllow   = "Allow"
)

// AuthorizationRequest is the event AWS IoT Core sends to a custom authorizer.
// It is decoded once per invocation and never modified.
type AuthorizationRequest struct {
	Token              string                     `json:"token"`
	SignatureVerified  bool                       `json:"signatureVerified"`
	Protocols          []string                   `json:"protocols"`
	ProtocolData       json.RawMessage            `json:"protocolData"`
	ConnectionMetadata map[string]json.RawMessage `json:"connectionMetadata"`
}

// AuthorizationResponse is the decision returned to the message broker
type AuthorizationResponse struct {
	IsAuthenticated          bool             `json:"isAuthenticated"`
	PrincipalID              string           `json:"principalId"`
	DisconnectAfterInSeconds uint32           `json:"disconnectAfterInSeconds"`
	RefreshAfterInSeconds    uint32           `json:"refreshAfterInSeconds"`
	PolicyDocuments          []PolicyDocument `json:"policyDocuments"`
}

// PolicyDocument is an IAM-style policy attached to the authenticated connection
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// PolicyStatement grants or denies one action on one resource
type PolicyStatement struct {
	Action   string `json:"Action"`
	Effect   string `json:"Effect"`
	Resource string `json:"Resource"`
}
