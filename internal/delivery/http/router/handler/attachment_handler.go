package handler

import (
	"log/slog"
	"net/http"

	"amptrack/internal/delivery/http/response"
	"amptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttachmentHandler issues signed URLs for receipt uploads and downloads.
type AttachmentHandler struct {
	uc     usecase.AttachmentUsecase
	logger *slog.Logger
}

// NewAttachmentHandler is the constructor for AttachmentHandler, injected by Fx.
func NewAttachmentHandler(uc usecase.AttachmentUsecase, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		uc:     uc,
		logger: logger,
	}
}

type uploadURLRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// IssueUploadURL handles POST /api/attachments/upload-url. The client PUTs
// the file to the returned URL and records the key on a cost entry.
func (h *AttachmentHandler) IssueUploadURL(c echo.Context) error {
	var req uploadURLRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload URL input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.uc.IssueUploadURL(c.Request().Context(), req.Filename, req.ContentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticket, "Upload URL issued successfully")
}

// IssueDownloadURL handles GET /api/attachments/download-url?key=...
func (h *AttachmentHandler) IssueDownloadURL(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "key query parameter is required")
	}

	url, err := h.uc.IssueDownloadURL(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "")
}
