package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"iot-lambda-functions/pkg/lambda"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Functions lambda.Registry
}

// SetupRoutes configures the local invoke routes. The invoke path matches the
// Lambda Invoke API so SDK clients can target the harness.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "iot-lambda-functions",
		})
	})

	router.GET("/functions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"functions": config.Functions.Names(),
		})
	})

	router.POST("/2015-03-31/functions/:name/invocations", invoke(config.Functions))
}

func invoke(functions lambda.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				ErrorType:    "RequestTooLargeException",
				ErrorMessage: err.Error(),
			})
			return
		}
		if len(bytes.TrimSpace(payload)) == 0 {
			payload = []byte("{}")
		}

		out, err := functions.Invoke(c.Request.Context(), c.Param("name"), json.RawMessage(payload))
		if err != nil {
			status, body := classifyError(err)
			c.Header("X-Amz-Function-Error", body.ErrorType)
			c.JSON(status, body)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}
