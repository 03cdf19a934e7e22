package utils

import (
	"github.com/gin-gonic/gin"
)

// WriteAndLogResponse encodes the response object to JSON and writes it to the HTTP response
// with the provided status code.
func WriteAndLogResponse(c *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(c, "info", "Returning response")
	c.JSON(statusCode, response)
}

// WriteAndLogError logs the underlying error and sends the given error payload with the
// specified status code. The underlying error never reaches the client.
func WriteAndLogError(c *gin.Context, payload interface{}, statusCode int, err error) {
	LogMessageWithFields(c, "error", "Error occurred: "+err.Error())
	c.JSON(statusCode, payload)
}
