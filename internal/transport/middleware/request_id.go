package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

// RequestID tags each request with an id, honouring an inbound X-Request-Id
// so ids survive proxy hops. The id is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
