package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with. Exactly one of Data
// and Error is set.
type Response[T any] struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Error   T      `json:"error,omitempty"`
}

const (
	defaultOkMessage    = "Request successful"
	defaultErrorMessage = "Request failed"
)

// JSONOkResponse writes data with status 200. Payload keys are sent as the
// caller tagged them.
func JSONOkResponse(w http.ResponseWriter, data any, message string, headers http.Header) error {
	if message == "" {
		message = defaultOkMessage
	}

	return write(w, &Response[any]{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	}, headers)
}

// JSONErrorResponse writes err under "error". A zero status means 500.
func JSONErrorResponse(w http.ResponseWriter, err any, message string, status int, headers http.Header) error {
	if message == "" {
		message = defaultErrorMessage
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return write(w, &Response[any]{
		Status:  status,
		Success: false,
		Message: message,
		Error:   err,
	}, headers)
}

func write(w http.ResponseWriter, body *Response[any], headers http.Header) error {
	js, err := json.MarshalIndent(body, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)

	_, err = w.Write(js)
	return err
}
