package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		honored bool
	}{
		{
			name:    "generates id when header is absent",
			inbound: "",
		},
		{
			name:    "honors well formed inbound id",
			inbound: "0d7a9c1e-8f3b-4a6d-b2c5-1e9f8d7a6b5c",
			honored: true,
		},
		{
			name:    "replaces malformed inbound id",
			inbound: "not-a-uuid; injected=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenInContext string
			handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenInContext = GetRequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
			if tt.inbound != "" {
				req.Header.Set("X-Request-ID", tt.inbound)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			echoed := rec.Header().Get("X-Request-ID")
			require.NotEmpty(t, echoed)
			assert.Equal(t, echoed, seenInContext)
			_, err := uuid.Parse(echoed)
			assert.NoError(t, err)
			if tt.honored {
				assert.Equal(t, tt.inbound, echoed)
			} else {
				assert.NotEqual(t, tt.inbound, echoed)
			}
		})
	}
}
