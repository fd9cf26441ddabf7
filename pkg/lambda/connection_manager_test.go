package lambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

func TestClientManager(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadsConfigOnce", func(t *testing.T) {
		loads := 0
		var gotOpts int
		cm := NewClientManager("eu-west-1", "http://localhost:8000")
		cm.loadConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			loads++
			gotOpts = len(optFns)
			return aws.Config{Region: "eu-west-1"}, nil
		}

		first, err := cm.DynamoDB(ctx)
		if err != nil {
			t.Fatalf("DynamoDB failed: %v", err)
		}
		second, err := cm.DynamoDB(ctx)
		if err != nil {
			t.Fatalf("DynamoDB failed: %v", err)
		}

		if first != second {
			t.Error("Expected the same client on every call")
		}
		if loads != 1 {
			t.Errorf("Expected config to load once, got %d", loads)
		}
		if gotOpts != 1 {
			t.Errorf("Expected region option, got %d options", gotOpts)
		}

		opts := first.Options()
		if opts.Region != "eu-west-1" {
			t.Errorf("Expected region eu-west-1, got %s", opts.Region)
		}
		if aws.ToString(opts.BaseEndpoint) != "http://localhost:8000" {
			t.Errorf("Expected endpoint override, got %v", aws.ToString(opts.BaseEndpoint))
		}
	})

	t.Run("ConfigFailure", func(t *testing.T) {
		cause := errors.New("shared config profile not found")
		cm := NewClientManager("", "")
		cm.loadConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, cause
		}

		client, err := cm.DynamoDB(ctx)
		if !errors.Is(err, cause) {
			t.Errorf("Expected load error, got %v", err)
		}
		if client != nil {
			t.Error("Expected no client on failure")
		}
	})
}
