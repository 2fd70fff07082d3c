package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

func TestRequestID_HonoursInboundHeader(t *testing.T) {
	inbound := uuid.New().String()

	var seen string
	wrapped := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	req.Header.Set("X-Request-Id", inbound)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if seen != inbound {
		t.Errorf("context id = %q, want inbound %q", seen, inbound)
	}
	if got := rec.Header().Get("X-Request-Id"); got != inbound {
		t.Errorf("response header = %q, want inbound %q", got, inbound)
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string
	wrapped := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attributes", nil))

	if seen == "" {
		t.Fatal("expected a generated id in the context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", seen, err)
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("response header %q should echo the context id %q", got, seen)
	}
}
