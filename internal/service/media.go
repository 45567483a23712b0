package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/storage"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

const maxFilenameLength = 100

// ObjectPresigner is satisfied by storage.S3Presigner.
type ObjectPresigner interface {
	PresignPut(ctx context.Context, key, contentType string) (storage.PresignedPut, error)
	PublicURL(key string) string
}

type UploadURL struct {
	Key       string
	Upload    storage.PresignedPut
	PublicURL string
}

type MediaService interface {
	UploadURL(ctx context.Context, companyID int64, filename, contentType string) (*UploadURL, error)
}

type mediaService struct {
	presigner ObjectPresigner
}

// NewMediaService accepts a nil presigner; every call then fails with ErrUnavailable.
func NewMediaService(presigner ObjectPresigner) MediaService {
	return &mediaService{presigner: presigner}
}

func (s *mediaService) UploadURL(ctx context.Context, companyID int64, filename, contentType string) (*UploadURL, error) {
	if s.presigner == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, storage.ErrDisabled)
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !allowedMediaType(contentType) {
		return nil, fmt.Errorf("%w: content type %q is not allowed", ErrInvalidInput, contentType)
	}

	name := sanitizeFilename(filename)
	if name == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("companies/%d/media/%d-%s", companyID, id.New(), name)

	upload, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}

	return &UploadURL{
		Key:       key,
		Upload:    upload,
		PublicURL: s.presigner.PublicURL(key),
	}, nil
}

func allowedMediaType(contentType string) bool {
	switch {
	case contentType == "video/mp4", contentType == "application/pdf":
		return true
	case strings.HasPrefix(contentType, "image/"), strings.HasPrefix(contentType, "audio/"):
		// svg can carry script
		return contentType != "image/svg+xml"
	}
	return false
}

func sanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	name = strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-.")
	if len(name) > maxFilenameLength {
		name = name[len(name)-maxFilenameLength:]
	}
	return name
}
