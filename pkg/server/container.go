package server

import (
	"fmt"

	"iot-lambda-functions/internal/config"
	"iot-lambda-functions/internal/handlers"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Function names used by the local harness registry
const (
	FunctionAuthorizer = "authorizer"
	FunctionHello      = "hello"
	FunctionStream     = "stream"
	FunctionTables     = "tables"
)

// Container holds all application dependencies. It is built once per
// process and shared by every invocation.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	AuthorizerHandler *handlers.AuthorizerHandler
	EchoHandler       *handlers.EchoHandler
	StreamHandler     *handlers.StreamHandler
	TablesHandler     *handlers.TablesHandler

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container. tables may be
// nil for functions that never touch the backing store.
func NewContainer(cfg *config.Config, logger *logrus.Logger, tables services.TableLister) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	serviceConfig := &services.ServiceConfig{
		Authorizer: services.AuthorizerConfig{
			Username:       cfg.Authorizer.Username,
			Password:       cfg.Authorizer.Password,
			PrincipalID:    cfg.Authorizer.PrincipalID,
			PolicyAction:   cfg.Authorizer.PolicyAction,
			PolicyResource: cfg.Authorizer.PolicyResource,
		},
		PageLimit: cfg.Tables.PageLimit,
	}

	serviceContainer, err := services.NewServiceContainer(tables, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	container := &Container{
		Config:            cfg,
		Logger:            logger,
		AuthorizerHandler: handlers.NewAuthorizerHandler(serviceContainer.AuthorizerService, logger),
		EchoHandler:       handlers.NewEchoHandler(serviceContainer.EchoService, logger),
		StreamHandler:     handlers.NewStreamHandler(serviceContainer.EchoService, logger),
		services:          serviceContainer,
	}

	if serviceContainer.TableService != nil {
		container.TablesHandler = handlers.NewTablesHandler(serviceContainer.TableService, logger)
	}

	return container, nil
}

// Functions returns the registry of functions available in this process
func (c *Container) Functions() lambda.Registry {
	functions := lambda.Registry{
		FunctionAuthorizer: lambda.Adapt(c.AuthorizerHandler.Handle),
		FunctionHello:      lambda.Adapt(c.EchoHandler.Handle),
		FunctionStream:     lambda.Adapt(c.StreamHandler.Handle),
	}
	if c.TablesHandler != nil {
		functions[FunctionTables] = lambda.Adapt(c.TablesHandler.Handle)
	}
	return functions
}
