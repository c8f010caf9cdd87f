package handler

import (
	"context"
	"net/http"
	"testing"

	"videotube/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return p.err
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "store reachable", wantStatus: http.StatusOK},
		{name: "store down", pingErr: errors.New("server selection timeout"), wantStatus: http.StatusServiceUnavailable, wantCode: "STORE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHealthHandler(fakePinger{err: tt.pingErr}, newDiscardLogger())
			c, rec := newJSONContext(newEcho(), http.MethodGet, "/health", "")

			require.NoError(t, h.HealthCheck(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["errorCode"])
			} else {
				assert.Equal(t, "ok", body["data"].(map[string]any)["status"])
			}
		})
	}
}
