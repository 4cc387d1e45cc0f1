package storage

import (
	"context"
	"time"
)

// StorageService stores booking attachments (referral letters, receipts).
// Unrelated to core scheduling; consumed by the presentation layer only.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
