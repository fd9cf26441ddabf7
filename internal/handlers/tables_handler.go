package handlers

import (
	"context"
	"encoding/json"

	"iot-lambda-functions/internal/models"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// TablesHandler serves the list-tables diagnostic function. It is wired to
// the disconnections queue, and the event payload is ignored.
type TablesHandler struct {
	tableService services.TableService
	logger       logrus.FieldLogger
}

// NewTablesHandler creates a new tables handler
func NewTablesHandler(tableService services.TableService, logger logrus.FieldLogger) *TablesHandler {
	return &TablesHandler{
		tableService: tableService,
		logger:       logger,
	}
}

// Handle lists the first page of tables
func (h *TablesHandler) Handle(ctx context.Context, _ json.RawMessage) (*models.TableListResponse, error) {
	log := lambda.InvocationLogger(ctx, h.logger)

	names, err := h.tableService.ListTables(ctx, log)
	if err != nil {
		log.WithError(err).Error("Failed to list tables")
		return nil, err
	}

	return models.NewTableListResponse(names), nil
}
