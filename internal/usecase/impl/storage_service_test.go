package impl

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/infra/metrics"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storageServiceFixtures struct {
	service usecase.StorageUsecase
	storage *mockSvc.MockFileStorage
	metrics *metrics.Metrics
}

func createTestStorageService(t *testing.T, maxUpload int64) storageServiceFixtures {
	cfg := newTestConfig()
	cfg.Storage.MaxUploadSize = maxUpload

	storage := mockSvc.NewMockFileStorage(t)
	m := metrics.New()

	return storageServiceFixtures{
		service: NewStorageService(storage, m, cfg, newDiscardLogger()),
		storage: storage,
		metrics: m,
	}
}

func TestStorageService_UploadImage(t *testing.T) {
	fx := createTestStorageService(t, 1024)
	ctx := context.Background()
	keyPattern := regexp.MustCompile(`^projects/harbour-pavilion-final-[0-9a-f]{8}\.jpg$`)

	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(keyPattern.MatchString), "image/jpeg", mock.Anything).
		RunAndReturn(func(_ context.Context, key, contentType string, r io.Reader) (*entity.StoredFile, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)

			return &entity.StoredFile{Key: key, Size: int64(len(body)), ContentType: contentType, HumanSize: "10 B"}, nil
		})

	file, err := fx.service.Upload(ctx, &usecase.UploadInput{
		Prefix:      "/projects/",
		Filename:    "Harbour Pavilion (final).JPG",
		ContentType: "image/jpeg",
		Size:        10,
		Body:        strings.NewReader("0123456789"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), file.Size)
	assert.InDelta(t, 10, testutil.ToFloat64(fx.metrics.UploadedBytes), 0)
}

func TestStorageService_UploadRejectsNonImages(t *testing.T) {
	fx := createTestStorageService(t, 1024)
	ctx := context.Background()

	_, err := fx.service.Upload(ctx, &usecase.UploadInput{Filename: "notes.pdf", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)

	_, err = fx.service.Upload(ctx, &usecase.UploadInput{Filename: "logo.svg", ContentType: "image/svg+xml", Body: strings.NewReader("<svg/>")})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)

	_, err = fx.service.Upload(ctx, &usecase.UploadInput{Filename: "fake.png", ContentType: "application/x-msdownload", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestStorageService_UploadRejectsDeclaredOversize(t *testing.T) {
	fx := createTestStorageService(t, 4)

	_, err := fx.service.Upload(context.Background(), &usecase.UploadInput{Filename: "a.png", Size: 5, Body: strings.NewReader("12345")})
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestStorageService_UploadRemovesUndeclaredOversize(t *testing.T) {
	fx := createTestStorageService(t, 4)
	ctx := context.Background()

	var storedKey string
	fx.storage.EXPECT().
		Upload(ctx, mock.Anything, "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (*entity.StoredFile, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			storedKey = key

			// The limit reader lets exactly one byte past the limit through.
			assert.Len(t, body, 5)

			return &entity.StoredFile{Key: key, Size: int64(len(body))}, nil
		})
	fx.storage.EXPECT().
		Delete(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)

			return nil
		})

	_, err := fx.service.Upload(ctx, &usecase.UploadInput{Filename: "a.png", Body: strings.NewReader("123456789")})
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestStorageService_DeleteAndOpen(t *testing.T) {
	fx := createTestStorageService(t, 1024)
	ctx := context.Background()

	fx.storage.EXPECT().Delete(ctx, "team/sara.jpg").Return(nil)
	fx.storage.EXPECT().Delete(ctx, "team/gone.jpg").Return(service.ErrObjectNotFound)
	fx.storage.EXPECT().Open(ctx, "team/gone.jpg").Return(nil, nil, service.ErrObjectNotFound)

	assert.NoError(t, fx.service.Delete(ctx, " team/sara.jpg "))
	assert.ErrorIs(t, fx.service.Delete(ctx, "team/gone.jpg"), domainerrors.ErrFileNotFound)

	_, _, err := fx.service.Open(ctx, "team/gone.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
}

func TestStorageService_ListNormalisesPrefix(t *testing.T) {
	fx := createTestStorageService(t, 1024)
	ctx := context.Background()

	fx.storage.EXPECT().List(ctx, "projects/").Return([]*entity.StoredFile{{Key: "projects/a.png"}}, nil)
	fx.storage.EXPECT().List(ctx, "").Return(nil, nil)

	files, err := fx.service.List(ctx, "projects")
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = fx.service.List(ctx, "")
	require.NoError(t, err)

	_, err = fx.service.List(ctx, "../secrets")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileKey)
}

func TestSanitizeKey(t *testing.T) {
	valid := []string{"a.png", "projects/2026/a.png", "projects/"}
	for _, key := range valid {
		_, err := sanitizeKey(key)
		assert.NoError(t, err, key)
	}

	invalid := []string{"", "/etc/passwd", "../a.png", "a/../../b", "a//b", "./a", "a\\b", "a\x00b", strings.Repeat("k", maxKeyLength+1)}
	for _, key := range invalid {
		_, err := sanitizeKey(key)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFileKey, key)
	}
}

func TestUploadKey(t *testing.T) {
	assert.Regexp(t, `^file-[0-9a-f]{8}\.png$`, uploadKey("", "(((.png", ".png"))
	assert.Regexp(t, `^media/team/sara-k-[0-9a-f]{8}\.webp$`, uploadKey("media/team/", `C:\photos\Sara K.webp`, ".webp"))
}
