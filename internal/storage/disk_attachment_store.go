package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthvault-api/internal/domain"
)

// PublicPrefix is the URL prefix under which stored attachments are served.
const PublicPrefix = "/uploads"

var _ AttachmentStoreContract = (*DiskAttachmentStore)(nil)

// DiskAttachmentStore implements AttachmentStoreContract on the local
// filesystem. Files live under <root>/<category>/ and are addressed
// publicly as /uploads/<category>/<name>.
type DiskAttachmentStore struct {
	root   string
	logger *slog.Logger
}

// NewDiskAttachmentStore creates a DiskAttachmentStore rooted at dir,
// creating the category directories if needed.
func NewDiskAttachmentStore(dir string, logger *slog.Logger) (*DiskAttachmentStore, error) {
	for _, c := range []Category{CategoryRecords, CategoryProfile} {
		if err := os.MkdirAll(filepath.Join(dir, string(c)), 0o755); err != nil {
			return nil, fmt.Errorf("%w: preparing upload dir: %v", domain.ErrStorage, err)
		}
	}
	return &DiskAttachmentStore{root: dir, logger: logger}, nil
}

func (s *DiskAttachmentStore) Store(ctx context.Context, category Category, file *multipart.FileHeader) (string, error) {
	if category != CategoryRecords && category != CategoryProfile {
		return "", fmt.Errorf("%w: unknown attachment category %q", domain.ErrValidation, category)
	}

	// Collision-resistant generated name; the client filename only
	// contributes its extension.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening upload %q: %v", domain.ErrStorage, file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, string(category), name))
	if err != nil {
		return "", fmt.Errorf("%w: creating attachment file: %v", domain.ErrStorage, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: writing attachment: %v", domain.ErrStorage, err)
	}

	ref := PublicPrefix + "/" + string(category) + "/" + name
	s.logger.Info("attachment stored", "category", category, "reference", ref, "size", file.Size)
	return ref, nil
}

func (s *DiskAttachmentStore) Remove(ctx context.Context, reference string) error {
	rel, ok := strings.CutPrefix(reference, PublicPrefix+"/")
	if !ok {
		return fmt.Errorf("%w: reference %q outside upload root", domain.ErrValidation, reference)
	}
	// Reject anything that would resolve above the upload root.
	rel = filepath.FromSlash(rel)
	if rel != filepath.Clean(rel) || strings.Contains(rel, "..") {
		return fmt.Errorf("%w: reference %q not a stored attachment path", domain.ErrValidation, reference)
	}

	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("attachment already absent", "reference", reference)
			return nil
		}
		return fmt.Errorf("%w: removing attachment %q: %v", domain.ErrStorage, reference, err)
	}
	s.logger.Info("attachment removed", "reference", reference)
	return nil
}
