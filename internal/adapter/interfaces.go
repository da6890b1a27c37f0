package adapter

import (
	"context"
	"io"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// MailDispatcher sends a single HTML email through the external mail
// function. Implementations must be safe for concurrent use.
type MailDispatcher interface {
	Send(ctx context.Context, msg models.MailMessage) error
}

// MediaUpload carries one media object on its way to the object store.
type MediaUpload struct {
	Key      string
	FileName string
	MimeType string
	Size     int64
	Body     io.Reader
}

// MediaStore persists media objects and hands out time-limited read links.
type MediaStore interface {
	Upload(ctx context.Context, upload MediaUpload) (models.MediaMetadata, error)
	PresignGetURL(ctx context.Context, storageKey string) (string, error)
}
