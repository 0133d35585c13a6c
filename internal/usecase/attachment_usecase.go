package usecase

import (
	"context"
)

// UploadTicket is a one-time signed upload slot for a cost entry receipt.
// The client PUTs the file to URL and then records Key on the cost entry.
type UploadTicket struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"` // Seconds until the URL stops working
}

// AttachmentUsecase issues signed object-store URLs. The core never handles
// file bytes.
type AttachmentUsecase interface {
	IssueUploadURL(ctx context.Context, filename, contentType string) (*UploadTicket, error)
	IssueDownloadURL(ctx context.Context, key string) (string, error)
}
