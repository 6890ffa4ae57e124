package utils

import (
	"github.com/gin-gonic/gin"
)

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination describes the window returned by a list endpoint.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// Response is the standard envelope for every API response.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// SendSuccess sends a success response
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendPage sends a success response carrying a list window and its pagination
func SendPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(200, Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

// SendError sends an error response
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// SendFieldErrors sends a 400 carrying one message per invalid field
func SendFieldErrors(c *gin.Context, errs []FieldError) {
	c.JSON(400, Response{
		Success: false,
		Errors:  errs,
	})
}
