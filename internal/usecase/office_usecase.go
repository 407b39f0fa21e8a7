package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// NearbyOffice is an office with its distance from a query point
type NearbyOffice struct {
	Office     *entity.Office `json:"office"`
	DistanceKM float64        `json:"distance_km"`
}

// OfficeUsecase defines the office map use cases
type OfficeUsecase interface {
	// FeatureCollection returns published offices as GeoJSON points with localized properties
	FeatureCollection(ctx context.Context, locale entity.Locale) (*geojson.FeatureCollection, error)

	// Nearest returns published offices ordered by geodesic distance from the point
	Nearest(ctx context.Context, lat, lng float64, limit int) ([]*NearbyOffice, error)

	// QRCode returns a PNG QR code linking to the office on a map
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
