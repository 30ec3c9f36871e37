// Package web defines common components for a web application.
package web

import (
	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json frinedly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a readable message for a failed binding validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must have at least " + fe.Param() + " items"
	case "max":
		return " must have at most " + fe.Param() + " items"
	case "amount":
		return " must be a non-negative number"
	}

	return " is invalid"
}
