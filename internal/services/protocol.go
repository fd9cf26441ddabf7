package services

import (
	"iot-lambda-functions/internal/models"

	"github.com/sirupsen/logrus"
)

// ClassifyProtocol maps the protocol tokens of an authorizer event to the
// transport the client negotiated:
//
//	[.., "http"]          -> HTTPS         (nothing between first and last)
//	[.., "mqtt"]          -> MQTT over TLS (nothing between first and last)
//	[_, "http", "mqtt"]   -> MQTT over Websocket
//
// Anything else, including an empty list, is unknown.
func ClassifyProtocol(log logrus.FieldLogger, protocols []string) models.ProtocolVariant {
	if len(protocols) > 0 {
		first, last := protocols[0], protocols[len(protocols)-1]
		var middle []string
		if len(protocols) > 2 {
			middle = protocols[1 : len(protocols)-1]
		}

		log.WithFields(logrus.Fields{
			"first":  first,
			"middle": middle,
			"last":   last,
		}).Info("Classifying protocol")

		switch {
		case len(middle) == 0 && last == models.TokenHTTP:
			return models.ProtocolHTTPS
		case len(middle) == 0 && last == models.TokenMQTT:
			return models.ProtocolMQTTOverTLS
		case len(middle) == 1 && middle[0] == models.TokenHTTP && last == models.TokenMQTT:
			return models.ProtocolMQTTOverWebsocket
		}
	}

	log.WithField("protocols", protocols).Info("Unknown protocol")
	return models.ProtocolUnknown
}
