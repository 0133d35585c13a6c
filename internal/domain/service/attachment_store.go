package service

import (
	"context"
	"time"
)

// AttachmentStore defines the interface for issuing signed object-store URLs
// for cost entry receipts. The core never proxies file bytes; clients upload
// and download directly against the signed URLs, and cost entries persist the
// object key only.
type AttachmentStore interface {
	// SignedUploadURL returns a URL the client may PUT the object to, valid
	// for the configured TTL.
	SignedUploadURL(ctx context.Context, key, contentType string) (string, error)

	// SignedDownloadURL returns a URL the client may GET the object from,
	// valid for the configured TTL.
	SignedDownloadURL(ctx context.Context, key string) (string, error)

	// TTL reports how long issued URLs stay valid.
	TTL() time.Duration

	// Close releases the underlying bucket handle.
	Close() error
}
