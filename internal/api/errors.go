package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failed request with a human-readable message chosen from
// the status code.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s: %d %s", e.Op, e.Status, e.Message)
}

const (
	msgUnreachable  = "Cannot connect to server. Please check your connection."
	msgBadRequest   = "Bad request"
	msgUnauthorized = "Unauthorized access"
	msgNotFound     = "Resource not found"
	msgServer       = "Server error. Please try again later."
	msgUnexpected   = "An unexpected error occurred"
)

type errorBody struct {
	Message string `json:"message"`
}

// messageFor maps a status and optional JSON body to the user-facing
// message. Status 0 means the server was never reached.
func messageFor(status int, body []byte) string {
	switch status {
	case 0:
		return msgUnreachable
	case http.StatusBadRequest:
		return bodyMessage(body, msgBadRequest)
	case http.StatusUnauthorized:
		return msgUnauthorized
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusInternalServerError:
		return msgServer
	default:
		return bodyMessage(body, msgUnexpected)
	}
}

func bodyMessage(body []byte, fallback string) string {
	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return fallback
	}
	if msg := strings.TrimSpace(eb.Message); msg != "" {
		return msg
	}
	return fallback
}
