package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"name" query:"name"`
	Amount string `json:"amount"`
}

func bindJSON(t *testing.T, body string, target any) error {
	t.Helper()

	e := echo.New()
	e.Binder = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c.Bind(target)
}

func TestStrictBinder_BindsDeclaredFields(t *testing.T) {
	var req sampleRequest
	err := bindJSON(t, `{"name":"Panel upgrade","amount":"125.50"}`, &req)

	require.NoError(t, err)
	assert.Equal(t, "Panel upgrade", req.Name)
	assert.Equal(t, "125.50", req.Amount)
}

func TestStrictBinder_RejectsUnknownFields(t *testing.T) {
	var req sampleRequest
	err := bindJSON(t, `{"name":"Panel upgrade","ammount":"125.50"}`, &req)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestStrictBinder_EmptyBodyFallsThrough(t *testing.T) {
	e := echo.New()
	e.Binder = New()
	req := httptest.NewRequest(http.MethodGet, "/?name=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var target sampleRequest
	err := c.Bind(&target)

	require.NoError(t, err)
	assert.Equal(t, "abc", target.Name)
}
