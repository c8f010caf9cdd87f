package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "videotube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generates an id", header: ""},
		{name: "reuses a client id", header: "client-req.42", wantSame: true},
		{name: "replaces a malformed id", header: "bad id\nwith newline"},
		{name: "replaces an oversized id", header: strings.Repeat("a", 65)},
	}

	m := NewRequestIDMiddleware(newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			c, rec := newEchoContext(req)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			assert.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, headerID)
			} else {
				assert.NotEqual(t, tt.header, headerID)
			}
		})
	}
}
