// Package binder provides the request binder for the Echo server.
package binder

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// strictBinder binds like echo.DefaultBinder but rejects JSON bodies that
// carry fields no request DTO declares, so typos like "ammount" fail loudly
// instead of being silently dropped.
type strictBinder struct {
	fallback echo.DefaultBinder
}

// New creates the strict request binder.
func New() echo.Binder {
	return &strictBinder{}
}

func (b *strictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)
	if req.ContentLength == 0 || !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, c)
	}

	if err := b.fallback.BindPathParams(c, i); err != nil {
		return err
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}
