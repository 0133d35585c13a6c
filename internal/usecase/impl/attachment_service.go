package impl

import (
	"context"
	"path"
	"time"

	"amptrack/internal/domain/service"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// attachmentService implements the AttachmentUsecase interface on top of the
// blob store. Keys are namespaced by date so buckets stay browsable.
type attachmentService struct {
	store service.AttachmentStore
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(store service.AttachmentStore) usecase.AttachmentUsecase {
	return &attachmentService{
		store: store,
	}
}

// IssueUploadURL mints a fresh object key and returns a signed PUT URL for it.
func (srv *attachmentService) IssueUploadURL(ctx context.Context, filename, contentType string) (*usecase.UploadTicket, error) {
	key := path.Join(
		"receipts",
		time.Now().UTC().Format("2006/01"),
		uuid.New().String()+path.Ext(filename),
	)

	url, err := srv.store.SignedUploadURL(ctx, key, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign upload URL")
	}

	return &usecase.UploadTicket{
		Key:       key,
		URL:       url,
		ExpiresIn: int64(srv.store.TTL().Seconds()),
	}, nil
}

// IssueDownloadURL returns a signed GET URL for an existing attachment key.
func (srv *attachmentService) IssueDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := srv.store.SignedDownloadURL(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign download URL")
	}

	return url, nil
}
