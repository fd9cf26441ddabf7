package models

// ProtocolVariant identifies the transport a client negotiated with the broker
type ProtocolVariant int

const (
	ProtocolUnknown ProtocolVariant = iota
	ProtocolHTTPS
	ProtocolMQTTOverTLS
	ProtocolMQTTOverWebsocket
)

// Protocol tokens as they appear in the authorizer event
const (
	TokenHTTP = "http"
	TokenMQTT = "mqtt"
)

func (p ProtocolVariant) String() string {
	switch p {
	case ProtocolHTTPS:
		return "HTTPS"
	case ProtocolMQTTOverTLS:
		return "MQTT over TLS"
	case ProtocolMQTTOverWebsocket:
		return "MQTT over Websocket"
	default:
		return "unknown"
	}
}
