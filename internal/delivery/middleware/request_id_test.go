package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "biolink/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generates an id", incoming: ""},
		{name: "keeps the client id", incoming: "client-id_1.a:b", keep: true},
		{name: "replaces an id with spaces", incoming: "evil id"},
		{name: "replaces an id with a line break", incoming: "a\nlevel=ERROR"},
		{name: "replaces an overlong id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID, seenEchoID string
			var seenLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				seenEchoID = deliverycontext.GetRequestID(c)
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.LoggerFrom(c.Request().Context(), nil)

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, headerID)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				_, parseErr := uuid.Parse(headerID)
				assert.NoError(t, parseErr)
			}
			assert.Equal(t, headerID, req.Header.Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, headerID, seenEchoID)
			assert.Equal(t, headerID, seenCtxID)
			assert.NotNil(t, seenLogger)
		})
	}
}

func TestRequestIDMiddleware_ScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/42", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Process(func(c echo.Context) error {
		deliverycontext.LoggerFrom(c.Request().Context(), nil).Info("handled")

		return nil
	})(c)
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "request_id=abc-123")
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "path=/api/profile/42")
}
