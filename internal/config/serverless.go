package config

import (
	"os"
)

// RuntimeInfo describes the Lambda environment the process runs in
type RuntimeInfo struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	Region          string
	MemorySize      string
}

// DetectRuntime reads the variables the Lambda service sets for every function
func DetectRuntime() RuntimeInfo {
	return RuntimeInfo{
		IsLambda:        isRunningInLambda(),
		FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		Region:          GetEnv("AWS_REGION", os.Getenv("AWS_DEFAULT_REGION")),
		MemorySize:      os.Getenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// DeploymentMode returns "serverless" inside Lambda and "local" otherwise
func (r RuntimeInfo) DeploymentMode() string {
	if r.IsLambda {
		return "serverless"
	}
	return "local"
}
