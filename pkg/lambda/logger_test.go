package lambda

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestInvocationLogger(t *testing.T) {
	t.Run("LambdaRequestID", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "c6af9ac6-7b61-11e6-9a41-93e812345678",
		})

		InvocationLogger(ctx, logger).Info("handled")

		if got := hook.LastEntry().Data["request_id"]; got != "c6af9ac6-7b61-11e6-9a41-93e812345678" {
			t.Errorf("Expected Lambda request id, got %v", got)
		}
	})

	t.Run("GeneratedRequestID", func(t *testing.T) {
		logger, hook := test.NewNullLogger()

		InvocationLogger(context.Background(), logger).Info("handled")

		id, ok := hook.LastEntry().Data["request_id"].(string)
		if !ok {
			t.Fatal("Expected request_id field")
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected generated uuid, got %q", id)
		}
	})
}
