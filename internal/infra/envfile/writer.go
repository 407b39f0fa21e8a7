// Package envfile persists bootstrap credentials as a dotenv file.
package envfile

import (
	"os"
	"path/filepath"

	"atelier/internal/domain/service"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const fileMode = 0o600

type writer struct{}

// NewWriter returns an EnvWriter backed by godotenv.
func NewWriter() service.EnvWriter {
	return &writer{}
}

// Write merges values into the dotenv file at path. Keys already in the file
// and absent from values are kept.
func (w *writer) Write(path string, values map[string]string) error {
	merged := map[string]string{}

	existing, err := godotenv.Read(path)
	switch {
	case err == nil:
		merged = existing
	case errors.Is(err, os.ErrNotExist):
	default:
		return errors.Wrapf(err, "failed to read %s", path)
	}

	for key, value := range values {
		merged[key] = value
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := godotenv.Write(merged, path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return errors.WithStack(os.Chmod(path, fileMode))
}
