package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/storage"
)

// allowedImageTypes is the fixed MIME allow-list for the images action.
// Anything outside it is silently skipped, never an error.
var allowedImageTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// GalleryService encapsulates the images action: list the configured folder
// prefix and return allow-listed image files base64-encoded.
type GalleryService struct {
	store  storage.ObjectStore
	prefix string
}

func NewGalleryService(store storage.ObjectStore, imagesPrefix string) *GalleryService {
	return &GalleryService{store: store, prefix: imagesPrefix}
}

// List returns every image under the folder prefix in backend listing order.
// 폴더 prefix 가 설정되지 않았으면 ErrFolderNotResolved 로 실패한다.
func (s *GalleryService) List(ctx context.Context) ([]dto.ImageFileDTO, error) {
	if s.prefix == "" {
		return nil, fmt.Errorf("%w: images_prefix is not configured", storage.ErrFolderNotResolved)
	}

	infos, err := tracedList(ctx, s.store, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrFolderNotResolved, err)
	}

	out := make([]dto.ImageFileDTO, 0, len(infos))
	for _, info := range infos {
		obj, err := tracedGet(ctx, s.store, info.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image %s: %w", info.Key, err)
		}

		mime := normalizeMime(obj)
		if !allowedImageTypes[mime] {
			logger.DebugWithFields("skipping non-image object", logger.Fields{
				"key":       info.Key,
				"mime_type": mime,
			})
			continue
		}

		out = append(out, dto.ImageFileDTO{
			Name:     info.Key,
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(obj.Data),
		})
	}

	return out, nil
}

// normalizeMime prefers the content type the store reports and falls back to
// sniffing the bytes when the store has none or only a generic one.
func normalizeMime(obj storage.Object) string {
	ct := strings.TrimSpace(obj.ContentType)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" || ct == "binary/octet-stream" {
		detected := mimetype.Detect(obj.Data)
		ct = detected.String()
		if i := strings.Index(ct, ";"); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
	}
	return ct
}
