package server

import (
	"context"
	"fmt"

	"iot-lambda-functions/internal/config"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// BootstrapOptions selects the dependencies a process needs
type BootstrapOptions struct {
	// WithBackingStore builds the DynamoDB client for the diagnostic lister
	WithBackingStore bool
}

// Bootstrap performs the process-lifetime setup shared by every binary:
// configuration, logging, AWS clients and the dependency container. Any
// error here is fatal; no invocation is served.
func Bootstrap(ctx context.Context, opts BootstrapOptions) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var tables services.TableLister
	if opts.WithBackingStore {
		clients := lambda.NewClientManager(cfg.AWS.Region, cfg.Tables.Endpoint)
		client, err := clients.DynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		tables = client
	}

	container, err := NewContainer(cfg, logger, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	runtime := config.DetectRuntime()
	logger.WithFields(logrus.Fields{
		"mode":        runtime.DeploymentMode(),
		"function":    runtime.FunctionName,
		"version":     runtime.FunctionVersion,
		"region":      runtime.Region,
		"environment": cfg.Environment,
	}).Info("Cold start")

	return container, nil
}
