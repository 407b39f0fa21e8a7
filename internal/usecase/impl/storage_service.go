package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"unicode"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/infra/metrics"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxKeyLength = 512

// imageTypes maps accepted upload extensions to the stored content type.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
}

// storageService implements the StorageUsecase interface.
type storageService struct {
	storage   service.FileStorage
	metrics   *metrics.Metrics
	maxUpload int64
	logger    *slog.Logger
}

// NewStorageService is the constructor for storageService.
func NewStorageService(storage service.FileStorage, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) usecase.StorageUsecase {
	return &storageService{
		storage:   storage,
		metrics:   m,
		maxUpload: cfg.Storage.MaxUploadSize,
		logger:    logger,
	}
}

func (s *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *storageService) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix != "" {
		cleaned, err := sanitizeKey(prefix)
		if err != nil {
			return nil, err
		}
		prefix = cleaned
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
	}

	return s.storage.List(ctx, prefix)
}

func (s *storageService) Open(ctx context.Context, key string) (io.ReadCloser, *entity.StoredFile, error) {
	cleaned, err := sanitizeKey(key)
	if err != nil {
		return nil, nil, err
	}

	reader, file, err := s.storage.Open(ctx, cleaned)
	if err != nil {
		return nil, nil, translateStorageError(err)
	}

	return reader, file, nil
}

// Upload stores an image under prefix with a collision-free name derived from the filename.
func (s *storageService) Upload(ctx context.Context, input *usecase.UploadInput) (*entity.StoredFile, error) {
	if input.Size > s.maxUpload {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxUpload))
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails("only images are accepted, got " + safeExt(ext))
	}
	if declared := strings.ToLower(input.ContentType); declared != "" && !strings.HasPrefix(declared, "image/") {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails("declared content type " + declared)
	}

	key := uploadKey(input.Prefix, input.Filename, ext)
	if _, err := sanitizeKey(key); err != nil {
		return nil, err
	}

	// One byte over the limit is enough to detect an oversized body.
	file, err := s.storage.Upload(ctx, key, contentType, io.LimitReader(input.Body, s.maxUpload+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload file")
	}

	if file.Size > s.maxUpload {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.log(ctx).Warn("Failed to remove oversized upload", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrFileTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxUpload))
	}

	s.metrics.UploadedBytes.Add(float64(file.Size))
	s.log(ctx).Info("Dashboard upload stored",
		slog.String("key", file.Key),
		slog.String("size", file.HumanSize),
	)

	return file, nil
}

func (s *storageService) Delete(ctx context.Context, key string) error {
	cleaned, err := sanitizeKey(key)
	if err != nil {
		return err
	}

	return translateStorageError(s.storage.Delete(ctx, cleaned))
}

func translateStorageError(err error) error {
	if errors.Is(err, service.ErrObjectNotFound) {
		return domainerrors.ErrFileNotFound
	}

	return err
}

// sanitizeKey rejects keys that are absolute, escape the bucket, or carry control characters.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)

	switch {
	case key == "":
		return "", domainerrors.ErrInvalidFileKey.WithDetails("key is empty")
	case len(key) > maxKeyLength:
		return "", domainerrors.ErrInvalidFileKey.WithDetails("key is too long")
	case strings.HasPrefix(key, "/"), strings.Contains(key, "\\"):
		return "", domainerrors.ErrInvalidFileKey.WithDetails("key must be relative")
	case strings.IndexFunc(key, unicode.IsControl) >= 0:
		return "", domainerrors.ErrInvalidFileKey.WithDetails("key contains control characters")
	}

	for _, segment := range strings.Split(strings.TrimSuffix(key, "/"), "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", domainerrors.ErrInvalidFileKey.WithDetails("key has an empty or relative segment")
		}
	}

	return key, nil
}

// uploadKey builds "<prefix>/<slug>-<random>.<ext>".
func uploadKey(prefix, filename, ext string) string {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, "\\", "/")), path.Ext(filename))
	name := slugify(base)
	if name == "" {
		name = "file"
	}

	key := name + "-" + uuid.NewString()[:8] + ext

	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return key
	}

	return prefix + "/" + key
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func safeExt(ext string) string {
	if ext == "" {
		return "no extension"
	}

	return ext
}
