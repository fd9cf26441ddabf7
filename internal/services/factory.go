package services

import (
	"fmt"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	AuthorizerService AuthorizerService
	EchoService       EchoService
	TableService      TableService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Authorizer AuthorizerConfig
	PageLimit  int32
}

// NewServiceContainer creates a new service container. TableService is only
// built when a table lister is supplied.
func NewServiceContainer(tables TableLister, config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		return nil, fmt.Errorf("service configuration cannot be nil")
	}

	container := &ServiceContainer{
		AuthorizerService: NewAuthorizerService(config.Authorizer),
		EchoService:       NewEchoService(),
	}

	if tables != nil {
		tableService, err := NewTableService(tables, config.PageLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to create table service: %w", err)
		}
		container.TableService = tableService
	}

	return container, nil
}
