// Package storage implements the uploads bucket on top of gocloud blob.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"
	"atelier/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New wraps an opened bucket. publicBaseURL, when set, is joined with the key
// to build the URL returned for each file.
func New(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.FileStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

func (s *bucketStorage) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	files := make([]*entity.StoredFile, 0)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list bucket")
		}
		if obj.IsDir {
			continue
		}

		files = append(files, &entity.StoredFile{
			Key:       obj.Key,
			Size:      obj.Size,
			HumanSize: util.FormatBytes(obj.Size),
			ModTime:   obj.ModTime,
			URL:       s.publicURL(obj.Key),
		})
	}

	return files, nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, *entity.StoredFile, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, &entity.StoredFile{
		Key:         key,
		Size:        reader.Size(),
		HumanSize:   util.FormatBytes(reader.Size()),
		ContentType: reader.ContentType(),
		ModTime:     reader.ModTime(),
		URL:         s.publicURL(key),
	}, nil
}

func (s *bucketStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (*entity.StoredFile, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read attributes of %s", key)
	}

	s.logger.InfoContext(ctx, "File uploaded",
		slog.String("key", key),
		slog.Int64("size", attrs.Size),
	)

	return &entity.StoredFile{
		Key:         key,
		Size:        attrs.Size,
		HumanSize:   util.FormatBytes(attrs.Size),
		ContentType: attrs.ContentType,
		ModTime:     attrs.ModTime,
		URL:         s.publicURL(key),
	}, nil
}

func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *bucketStorage) Ping(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.Wrap(err, "bucket is not accessible")
	}
	if !ok {
		return errors.New("bucket does not exist")
	}

	return nil
}

func (s *bucketStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return ""
	}

	return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + key
}
