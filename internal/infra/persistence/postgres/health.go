package postgres

import (
	"context"

	"atelier/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type healthChecker struct {
	db *gorm.DB
}

// NewHealthChecker reports whether the database accepts connections.
func NewHealthChecker(db *gorm.DB) repository.HealthChecker {
	return &healthChecker{db: db}
}

func (h *healthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}
