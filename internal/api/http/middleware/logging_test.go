package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akarpov/storefront/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	tests := map[string]struct {
		handler    http.HandlerFunc
		wantStatus int
	}{
		"passes response through": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte("short and stout"))
			},
			wantStatus: http.StatusTeapot,
		},
		"implicit 200": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLogging(testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			rec := httptest.NewRecorder()

			l.Handle(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
