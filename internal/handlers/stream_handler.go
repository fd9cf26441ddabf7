package handlers

import (
	"context"
	"encoding/json"

	"iot-lambda-functions/internal/models"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// StreamHandler greets every record the IoT rule puts on the Kinesis stream
type StreamHandler struct {
	echoService services.EchoService
	logger      logrus.FieldLogger
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(echoService services.EchoService, logger logrus.FieldLogger) *StreamHandler {
	return &StreamHandler{
		echoService: echoService,
		logger:      logger,
	}
}

// Handle processes a batch. Records whose data is not JSON are reported as
// batch item failures so only they are redelivered.
func (h *StreamHandler) Handle(ctx context.Context, event events.KinesisEvent) (events.KinesisEventResponse, error) {
	log := lambda.InvocationLogger(ctx, h.logger)
	response := events.KinesisEventResponse{
		BatchItemFailures: []events.KinesisBatchItemFailure{},
	}

	for _, record := range event.Records {
		recordLog := log.WithFields(logrus.Fields{
			"event_id":        record.EventID,
			"sequence_number": record.Kinesis.SequenceNumber,
			"partition_key":   record.Kinesis.PartitionKey,
		})

		if !json.Valid(record.Kinesis.Data) {
			recordLog.Warn("Skipping record with invalid JSON data")
			response.BatchItemFailures = append(response.BatchItemFailures, events.KinesisBatchItemFailure{
				ItemIdentifier: record.Kinesis.SequenceNumber,
			})
			continue
		}

		h.echoService.Greet(recordLog, models.DecodeEchoRequest(record.Kinesis.Data))
	}

	log.WithFields(logrus.Fields{
		"records":  len(event.Records),
		"failures": len(response.BatchItemFailures),
	}).Info("Processed stream batch")

	return response, nil
}
