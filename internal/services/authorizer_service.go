package services

import (
	"context"

	"iot-lambda-functions/internal/models"

	"github.com/sirupsen/logrus"
)

// Session lifetimes handed to the broker with every decision
const (
	DisconnectAfterSeconds uint32 = 86400
	RefreshAfterSeconds    uint32 = 300
)

// AuthorizerConfig holds the values the policy responder reads
type AuthorizerConfig struct {
	Username       string
	Password       string
	PrincipalID    string
	PolicyAction   string
	PolicyResource string
}

// authorizerService implements AuthorizerService.
//
// The decision is a stub: every well-formed request is authenticated with the
// same principal and policy, whatever the token or signatureVerified say.
// Username and Password are logged for diagnostics only; the password is
// masked unless it is empty or the "null" placeholder.
type authorizerService struct {
	config AuthorizerConfig
}

// NewAuthorizerService creates a new authorizer service
func NewAuthorizerService(config AuthorizerConfig) AuthorizerService {
	return &authorizerService{config: config}
}

// Authorize builds the authorization decision for one connection attempt
func (s *authorizerService) Authorize(ctx context.Context, log logrus.FieldLogger, req *models.AuthorizationRequest) (*models.AuthorizationResponse, error) {
	if protocol := ClassifyProtocol(log, req.Protocols); protocol != models.ProtocolUnknown {
		log.WithField("protocol", protocol.String()).Info("Protocol classified")
	}

	for key, value := range req.ConnectionMetadata {
		log.WithFields(logrus.Fields{
			"key":   key,
			"value": string(value),
		}).Info("Connection metadata")
	}

	log.WithFields(logrus.Fields{
		"username": s.config.Username,
		"password": maskSecret(s.config.Password),
	}).Info("Authorizer credentials")

	return &models.AuthorizationResponse{
		IsAuthenticated:          true,
		PrincipalID:              s.config.PrincipalID,
		DisconnectAfterInSeconds: DisconnectAfterSeconds,
		RefreshAfterInSeconds:    RefreshAfterSeconds,
		PolicyDocuments: []models.PolicyDocument{
			{
				Version: models.PolicyVersion,
				Statement: []models.PolicyStatement{
					{
						Action:   s.config.PolicyAction,
						Effect:   models.EffectAllow,
						Resource: s.config.PolicyResource,
					},
				},
			},
		},
	}, nil
}

// maskSecret hides a configured secret but keeps the unset marker readable
func maskSecret(secret string) string {
	if secret == "" || secret == "null" {
		return secret
	}
	return "********"
}
