package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/middleware"
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/response"
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the same validator and error
// handler the real server wires up, so handler tests exercise the full
// request path including error mapping.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	errorMiddleware := middleware.NewErrorMiddleware(newDiscardLogger())
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}
