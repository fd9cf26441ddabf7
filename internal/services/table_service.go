package services

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// DefaultPageLimit is the number of table names requested per call
const DefaultPageLimit int32 = 10

type tableService struct {
	client TableLister
	limit  int32
}

// NewTableService creates a table service issuing a single page request of
// at most limit names
func NewTableService(client TableLister, limit int32) (TableService, error) {
	if client == nil {
		return nil, errors.New("table lister cannot be nil")
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return &tableService{client: client, limit: limit}, nil
}

// ListTables returns the first page of table names. Later pages are not fetched.
func (s *tableService) ListTables(ctx context.Context, log logrus.FieldLogger) ([]string, error) {
	output, err := s.client.ListTables(ctx, &dynamodb.ListTablesInput{
		Limit: aws.Int32(s.limit),
	})
	if err != nil {
		return nil, NewDownstreamError("dynamodb", "ListTables", err)
	}

	names := output.TableNames
	if len(names) > int(s.limit) {
		names = names[:s.limit]
	}

	log.Info("Tables:")
	for _, name := range names {
		log.Infof(" %s", name)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}
