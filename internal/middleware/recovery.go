package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
)

// Recovery converts handler panics into 500 responses so a single
// bad request cannot take the server down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] panic on %s %s rid=%s: %v\n%s",
					r.Method, r.URL.Path, GetRequestID(r.Context()), err, debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write(apierror.InternalError("internal server error").ToJSON())
			}
		}()

		next.ServeHTTP(w, r)
	})
}
