package main

import (
	"context"
	"log"

	"iot-lambda-functions/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func main() {
	container, err := server.Bootstrap(context.Background(), server.BootstrapOptions{})
	if err != nil {
		log.Fatalf("Failed to start hello function: %v", err)
	}

	awslambda.Start(container.EchoHandler.Handle)
}
