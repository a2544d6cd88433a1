package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "required_if":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is required for this role", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "min", "gte":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "gt":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "max", "lte":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		case "datetime":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be a date in format %s", err.Field(), err.Param()))
		case "url":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid URL", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}
