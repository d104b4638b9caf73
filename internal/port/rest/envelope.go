package rest

import (
	"encoding/json"
	"fmt"
)

// APIResponse is the typed envelope around a response payload.
type APIResponse[T any] struct {
	Status int
	Data   T
}

// Decode parses resp.Body against T. Fields absent from T are ignored.
// An empty body decodes to the zero value of T.
func Decode[T any](resp Response) (APIResponse[T], error) {
	out := APIResponse[T]{Status: resp.Status}
	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
		return APIResponse[T]{}, &DecodeError{Status: resp.Status, Err: err}
	}
	return out, nil
}

// DecodeError reports a 2xx response whose body does not match the expected shape.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
