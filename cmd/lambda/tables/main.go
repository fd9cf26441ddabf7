package main

import (
	"context"
	"log"

	"iot-lambda-functions/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

// Attached to the IoT disconnections queue; lists the account's tables on every batch
func main() {
	container, err := server.Bootstrap(context.Background(), server.BootstrapOptions{
		WithBackingStore: true,
	})
	if err != nil {
		log.Fatalf("Failed to start tables function: %v", err)
	}

	awslambda.Start(container.TablesHandler.Handle)
}
