package handler

import (
	"amptrack/internal/delivery/http/middleware"
	domainerrors "amptrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorID extracts the authenticated user's id set by the auth middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// pathID parses the ":id" path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id: must be a UUID")
	}

	return id, nil
}
