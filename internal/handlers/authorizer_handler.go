package handlers

import (
	"context"
	"encoding/json"

	"iot-lambda-functions/internal/models"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// AuthorizerHandler serves the IoT Core custom authorizer function
type AuthorizerHandler struct {
	authorizerService services.AuthorizerService
	logger            logrus.FieldLogger
}

// NewAuthorizerHandler creates a new authorizer handler
func NewAuthorizerHandler(authorizerService services.AuthorizerService, logger logrus.FieldLogger) *AuthorizerHandler {
	return &AuthorizerHandler{
		authorizerService: authorizerService,
		logger:            logger,
	}
}

// Handle decodes the authorizer event and returns the broker decision.
// A malformed event fails the invocation.
func (h *AuthorizerHandler) Handle(ctx context.Context, event json.RawMessage) (*models.AuthorizationResponse, error) {
	log := lambda.InvocationLogger(ctx, h.logger)

	req, err := models.DecodeAuthorizationRequest(event)
	if err != nil {
		log.WithError(err).Error("Rejected authorizer event")
		return nil, err
	}

	return h.authorizerService.Authorize(ctx, log, req)
}
