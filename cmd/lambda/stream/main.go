package main

import (
	"context"
	"log"

	"iot-lambda-functions/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

// Consumes the Kinesis stream fed by the IoT topic rule
func main() {
	container, err := server.Bootstrap(context.Background(), server.BootstrapOptions{})
	if err != nil {
		log.Fatalf("Failed to start stream function: %v", err)
	}

	awslambda.Start(container.StreamHandler.Handle)
}
