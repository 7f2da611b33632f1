package storage

import (
	"context"
	"mime/multipart"
)

// Category partitions the attachment store's on-disk location by purpose.
type Category string

const (
	// CategoryRecords holds files attached to medical records.
	CategoryRecords Category = "records"
	// CategoryProfile holds account profile pictures.
	CategoryProfile Category = "profile"
)

// AttachmentStoreContract defines the interface for binary attachment
// persistence. Store returns an opaque public reference usable later for
// retrieval and removal.
type AttachmentStoreContract interface {
	// Store persists the uploaded file under the given category and
	// returns its public reference. The stored filename is generated,
	// never derived from the client-supplied name alone.
	Store(ctx context.Context, category Category, file *multipart.FileHeader) (string, error)
	// Remove deletes the binary behind a previously returned reference.
	// A reference that no longer resolves is not an error.
	Remove(ctx context.Context, reference string) error
}
