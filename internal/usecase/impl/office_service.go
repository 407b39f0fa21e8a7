package impl

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strconv"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultNearestLimit = 3
	mapsSearchURL       = "https://www.google.com/maps/search/"
)

// officeService implements the OfficeUsecase interface.
type officeService struct {
	offices repository.OfficeRepository
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// NewOfficeService is the constructor for officeService.
func NewOfficeService(offices repository.OfficeRepository, qrcode service.QRCodeService, logger *slog.Logger) usecase.OfficeUsecase {
	return &officeService{
		offices: offices,
		qrcode:  qrcode,
		logger:  logger,
	}
}

func (s *officeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FeatureCollection returns one point feature per published office.
func (s *officeService) FeatureCollection(ctx context.Context, locale entity.Locale) (*geojson.FeatureCollection, error) {
	offices, err := s.offices.List(ctx, true)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, office := range offices {
		feature := geojson.NewFeature(officePoint(office))
		feature.ID = office.ID.String()
		feature.Properties = geojson.Properties{
			"city":    office.City.In(locale.Tag),
			"address": office.Address.In(locale.Tag),
			"phone":   office.Phone,
			"email":   office.Email,
			"map_url": officeMapURL(office),
		}
		fc.Append(feature)
	}

	return fc, nil
}

// Nearest orders published offices by great-circle distance from (lat, lng).
func (s *officeService) Nearest(ctx context.Context, lat, lng float64, limit int) ([]*usecase.NearbyOffice, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and lng within [-180, 180]")
	}
	if limit <= 0 {
		limit = defaultNearestLimit
	}

	offices, err := s.offices.List(ctx, true)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lng, lat}
	nearby := make([]*usecase.NearbyOffice, 0, len(offices))
	for _, office := range offices {
		meters := geo.DistanceHaversine(origin, officePoint(office))
		nearby = append(nearby, &usecase.NearbyOffice{
			Office:     office,
			DistanceKM: float64(int64(meters/10+0.5)) / 100,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// QRCode encodes the office's map link as a PNG.
func (s *officeService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	office, err := s.offices.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound
		}

		return nil, err
	}
	if !office.Published {
		return nil, domainerrors.ErrContentNotFound
	}

	png, err := s.qrcode.GeneratePNG(officeMapURL(office))
	if err != nil {
		s.log(ctx).Error("Failed to generate office QR code",
			slog.String("office_id", id.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

// orb points are (lng, lat).
func officePoint(office *entity.Office) orb.Point {
	return orb.Point{office.Longitude, office.Latitude}
}

func officeMapURL(office *entity.Office) string {
	query := strconv.FormatFloat(office.Latitude, 'f', 6, 64) + "," + strconv.FormatFloat(office.Longitude, 'f', 6, 64)

	return mapsSearchURL + "?" + url.Values{"api": {"1"}, "query": {query}}.Encode()
}
