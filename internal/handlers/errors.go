package handlers

import (
	"errors"
	"net/http"

	"iot-lambda-functions/internal/models"
	"iot-lambda-functions/internal/services"
	"iot-lambda-functions/pkg/lambda"
)

// ErrorResponse mirrors the error payload the Lambda runtime returns for a failed invocation
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

// classifyError maps an invocation error to an HTTP status and error type
func classifyError(err error) (int, ErrorResponse) {
	var notFound *lambda.FunctionNotFoundError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{ErrorType: "ResourceNotFoundException", ErrorMessage: err.Error()}
	case models.IsDecodeError(err), errors.Is(err, lambda.ErrInvalidPayload):
		return http.StatusBadRequest, ErrorResponse{ErrorType: "DecodeError", ErrorMessage: err.Error()}
	case services.IsDownstreamError(err):
		return http.StatusBadGateway, ErrorResponse{ErrorType: "DownstreamError", ErrorMessage: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{ErrorType: "Unhandled", ErrorMessage: err.Error()}
	}
}
