package utils

import (
	"github.com/gin-gonic/gin"
)

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// LegacyErrorResponse is the body the original service sent on password
// mismatches.
type LegacyErrorResponse struct {
	ErrorFormat string `json:"errorFormat"`
}

func SendData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, DataResponse{Data: data})
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{ErrorMessage: message})
}

func SendLegacyError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, LegacyErrorResponse{ErrorFormat: message})
}
