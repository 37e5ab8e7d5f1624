// Package response renders command outcomes as a uniform JSON envelope.
// The CLI is the only consumer; it plays the role the HTTP response
// writer plays in a server.
package response

import (
	"encoding/json"
	"io"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func write(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func Success(w io.Writer, message string, data interface{}) error {
	return write(w, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w io.Writer, message string, err interface{}) error {
	return write(w, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

// Conflict renders a scheduling conflict: a recoverable outcome, not a
// failure of the command itself.
func Conflict(w io.Writer, reason string) error {
	return write(w, Response{
		Success: false,
		Message: "scheduling conflict",
		Error:   reason,
	})
}

func ValidationError(w io.Writer, errors interface{}) error {
	return write(w, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}
