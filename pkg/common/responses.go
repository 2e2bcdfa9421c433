package common

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope for error payloads
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON sends v as a JSON response
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// StandardErrorCodes defines common error codes
var StandardErrorCodes = struct {
	TooManyRequests string
	InternalError   string
}{
	TooManyRequests: "TOO_MANY_REQUESTS",
	InternalError:   "INTERNAL_ERROR",
}
