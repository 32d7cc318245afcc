package errors

import "errors"

var (
	ErrorNotImplemented   = errors.New("not implemented")
	ErrorUnknownFunction  = errors.New("unknown function")
	ErrorInvalidBody      = errors.New("request body must be a JSON object")
	ErrorInvalidArguments = errors.New("invalid function arguments")
)
