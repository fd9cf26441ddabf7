package services

import (
	"context"

	"iot-lambda-functions/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// AuthorizerService decides whether a broker connection is allowed
type AuthorizerService interface {
	Authorize(ctx context.Context, log logrus.FieldLogger, req *models.AuthorizationRequest) (*models.AuthorizationResponse, error)
}

// EchoService formats the hello-world greeting
type EchoService interface {
	Greet(log logrus.FieldLogger, req models.EchoRequest) *models.EchoResponse
}

// TableService lists the tables in the backing store
type TableService interface {
	ListTables(ctx context.Context, log logrus.FieldLogger) ([]string, error)
}

// TableLister is the subset of the DynamoDB client used by TableService
type TableLister interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}
