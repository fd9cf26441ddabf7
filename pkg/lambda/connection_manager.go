package lambda

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientManager builds AWS clients once per process. Warm invocations reuse
// the clients created during the cold start.
type ClientManager struct {
	region   string
	endpoint string

	loadConfig func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error)

	initOnce sync.Once
	awsCfg   aws.Config
	initErr  error

	dynamoOnce sync.Once
	dynamo     *dynamodb.Client
}

// NewClientManager creates a client manager. Empty region and endpoint leave
// the SDK's default resolution in place.
func NewClientManager(region, endpoint string) *ClientManager {
	return &ClientManager{
		region:     region,
		endpoint:   endpoint,
		loadConfig: awsconfig.LoadDefaultConfig,
	}
}

// Config returns the shared AWS configuration, loading it on first use
func (cm *ClientManager) Config(ctx context.Context) (aws.Config, error) {
	cm.initOnce.Do(func() {
		var opts []func(*awsconfig.LoadOptions) error
		if cm.region != "" {
			opts = append(opts, awsconfig.WithRegion(cm.region))
		}

		cfg, err := cm.loadConfig(ctx, opts...)
		if err != nil {
			cm.initErr = fmt.Errorf("unable to load AWS SDK config: %w", err)
			return
		}
		cm.awsCfg = cfg
	})

	return cm.awsCfg, cm.initErr
}

// DynamoDB returns the shared DynamoDB client
func (cm *ClientManager) DynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := cm.Config(ctx)
	if err != nil {
		return nil, err
	}

	cm.dynamoOnce.Do(func() {
		cm.dynamo = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if cm.endpoint != "" {
				o.BaseEndpoint = aws.String(cm.endpoint)
			}
		})
	})

	return cm.dynamo, nil
}
