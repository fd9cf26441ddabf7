package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InvocationLogger returns base annotated with the invocation's request id.
// Outside the Lambda runtime a fresh id is generated.
func InvocationLogger(ctx context.Context, base logrus.FieldLogger) logrus.FieldLogger {
	requestID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return base.WithField("request_id", requestID)
}
