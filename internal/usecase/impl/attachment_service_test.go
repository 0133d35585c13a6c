package impl

import (
	"context"
	"path"
	"strings"
	"testing"
	"time"

	mockSvc "amptrack/internal/mocks/service"
	"amptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAttachmentService(t *testing.T) (usecase.AttachmentUsecase, *mockSvc.MockAttachmentStore) {
	store := mockSvc.NewMockAttachmentStore(t)

	return NewAttachmentService(store), store
}

func TestAttachmentService_IssueUploadURL(t *testing.T) {
	service, store := createTestAttachmentService(t)

	ctx := context.Background()

	store.EXPECT().
		SignedUploadURL(ctx, mock.AnythingOfType("string"), "application/pdf").
		Return("https://bucket.example.com/signed-put", nil)
	store.EXPECT().TTL().Return(15 * time.Minute)

	ticket, err := service.IssueUploadURL(ctx, "invoice.pdf", "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/signed-put", ticket.URL)
	assert.Equal(t, int64(900), ticket.ExpiresIn)

	// Keys keep the original extension but never the original name.
	assert.True(t, strings.HasPrefix(ticket.Key, "receipts/"))
	assert.Equal(t, ".pdf", path.Ext(ticket.Key))
	assert.NotContains(t, ticket.Key, "invoice")
}

func TestAttachmentService_IssueUploadURL_SignFailure(t *testing.T) {
	service, store := createTestAttachmentService(t)

	ctx := context.Background()

	store.EXPECT().
		SignedUploadURL(ctx, mock.AnythingOfType("string"), "image/png").
		Return("", errors.New("bucket unreachable"))

	ticket, err := service.IssueUploadURL(ctx, "receipt.png", "image/png")

	assert.Nil(t, ticket)
	assert.Error(t, err)
}

func TestAttachmentService_IssueDownloadURL(t *testing.T) {
	service, store := createTestAttachmentService(t)

	ctx := context.Background()
	key := "receipts/2026/02/3f1a.pdf"

	store.EXPECT().
		SignedDownloadURL(ctx, key).
		Return("https://bucket.example.com/signed-get", nil)

	url, err := service.IssueDownloadURL(ctx, key)

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/signed-get", url)
}
