package handlers

import (
	"context"
	"encoding/json"

	"iot-lambda-functions/internal/models"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// EchoHandler serves the hello-world function
type EchoHandler struct {
	echoService services.EchoService
	logger      logrus.FieldLogger
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(echoService services.EchoService, logger logrus.FieldLogger) *EchoHandler {
	return &EchoHandler{
		echoService: echoService,
		logger:      logger,
	}
}

// Handle greets the caller. Missing fields fall back to their defaults, so it never fails.
func (h *EchoHandler) Handle(ctx context.Context, event json.RawMessage) (*models.EchoResponse, error) {
	log := lambda.InvocationLogger(ctx, h.logger)
	return h.echoService.Greet(log, models.DecodeEchoRequest(event)), nil
}
