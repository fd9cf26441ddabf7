package services

import (
	"iot-lambda-functions/internal/models"

	"github.com/sirupsen/logrus"
)

type echoService struct{}

// NewEchoService creates a new echo service
func NewEchoService() EchoService {
	return &echoService{}
}

func (s *echoService) Greet(log logrus.FieldLogger, req models.EchoRequest) *models.EchoResponse {
	greeting := req.Greeting()
	log.Info(greeting)
	return &models.EchoResponse{Response: greeting}
}
