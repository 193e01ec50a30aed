package response

import (
	"encoding/json"
	"net/http"

	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
)

// Text sends a plain-text response. Confirmation endpoints reply with
// short text bodies rather than JSON envelopes.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}

// JSON sends the payload as-is with the given status code. List
// endpoints reply with bare JSON arrays.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an error response. Unrecognized errors become a generic
// 500 so internal details never leak to the caller.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		apiErr = apierror.InternalError("an unexpected error occurred")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	_, _ = w.Write(apiErr.ToJSON())
}
