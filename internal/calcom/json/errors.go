package json

import (
	jsonEncoding "encoding/json"
)

type Errors struct {
	Message string    `json:"message"`
	Error   ErrorInfo `json:"error"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UnmarshalJSON tolerates "error" being a plain string
func (e *ErrorInfo) UnmarshalJSON(data []byte) error {
	var message string
	if err := jsonEncoding.Unmarshal(data, &message); err == nil {
		e.Message = message
		return nil
	}

	type alias ErrorInfo
	var info alias
	if err := jsonEncoding.Unmarshal(data, &info); err != nil {
		return err
	}

	*e = ErrorInfo(info)

	return nil
}

func (e *Errors) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Error.Message
}
