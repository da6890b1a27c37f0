package models

import "time"

// EntryType classifies vault entry content.
type EntryType string

const (
	EntryTypeText     EntryType = "text"
	EntryTypeImage    EntryType = "image"
	EntryTypeVideo    EntryType = "video"
	EntryTypeAudio    EntryType = "audio"
	EntryTypeDocument EntryType = "document"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeText, EntryTypeImage, EntryTypeVideo, EntryTypeAudio, EntryTypeDocument:
		return true
	}
	return false
}

// VaultEntry is a single unit of content inside a vault. For text entries the
// content is ciphertext; for media entries it is an encrypted JSON envelope
// ([MediaMetadata]) whose only unencrypted boundary is the remote storage
// object the envelope points at. Entries are append-only from the API's
// perspective and deletable individually.
type VaultEntry struct {
	EntryID string `json:"id"`
	VaultID string `json:"vault_id"`

	// Type of the content.
	Type EntryType `json:"type"`

	// Content is ciphertext at rest. API responses carry the caller's
	// original plaintext so the client can render without a round trip.
	Content string `json:"content"`

	// ContentKind tags how Content is stored.
	ContentKind ContentKind `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (e VaultEntry) TableName() string {
	return "vault_entries"
}

// MediaMetadata is the structured envelope stored as the content of media
// entries. The URL points at the remote object store; everything else is
// descriptive. The envelope is JSON-encoded and encrypted before persistence.
type MediaMetadata struct {
	// URL is the remote storage location of the media object.
	URL string `json:"url"`

	// StorageKey is the object key inside the media bucket.
	StorageKey string `json:"storage_key,omitempty"`

	// FileName is the original upload file name.
	FileName string `json:"filename,omitempty"`

	// MimeType of the uploaded object.
	MimeType string `json:"mime_type,omitempty"`

	// FileSize in bytes.
	FileSize int64 `json:"file_size,omitempty"`
}
