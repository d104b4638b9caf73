package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx answer from the GaaS API.
// Message and Details come from the API's {"message","details"} error body when present.
type Error struct {
	StatusCode int    `json:"-"`
	Method     string `json:"-"`
	Path       string `json:"-"`
	Message    string `json:"message"`
	Details    string `json:"details"`
}

// NewError builds an Error from a response status and body.
func NewError(method, path string, status int, body []byte) *Error {
	e := &Error{StatusCode: status, Method: method, Path: path}
	var payload struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Message = payload.Message
		e.Details = payload.Details
	} else if len(body) > 0 {
		e.Message = string(body)
	}
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an *Error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

func IsConflict(err error) bool { return StatusCode(err) == http.StatusConflict }
