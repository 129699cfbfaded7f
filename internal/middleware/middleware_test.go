package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricingNavigator/business/assessment"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var traced string
	next := func(c echo.Context) error {
		traced = assessment.TraceIDFromContext(c.Request().Context())
		return nil
	}

	require.NoError(t, RequestID()(next)(c))

	assert.NotEmpty(t, traced)
	assert.Equal(t, traced, rec.Header().Get(echo.HeaderXRequestID))

	_, err := uuid.Parse(traced)
	assert.NoError(t, err)
}

func TestRequestIDHonorsInboundHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var traced string
	next := func(c echo.Context) error {
		traced = assessment.TraceIDFromContext(c.Request().Context())
		return nil
	}

	require.NoError(t, RequestID()(next)(c))

	assert.Equal(t, "req-123", traced)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestErrorHandlerShapesEchoErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestErrorHandlerDefaultsToInternal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
