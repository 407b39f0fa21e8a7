package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type officeServiceFixtures struct {
	service usecase.OfficeUsecase
	offices *mockRepo.MockContentRepository[entity.Office]
	qrcode  *mockSvc.MockQRCodeService
}

func createTestOfficeService(t *testing.T) officeServiceFixtures {
	offices := mockRepo.NewMockContentRepository[entity.Office](t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	return officeServiceFixtures{
		service: NewOfficeService(offices, qrcode, newDiscardLogger()),
		offices: offices,
		qrcode:  qrcode,
	}
}

func testOffices() []*entity.Office {
	return []*entity.Office{
		{Meta: entity.Meta{ID: uuid.New(), Published: true}, City: entity.Localized{EN: "London", AR: "لندن"}, Latitude: 51.5074, Longitude: -0.1278},
		{Meta: entity.Meta{ID: uuid.New(), Published: true}, City: entity.Localized{EN: "Dubai", AR: "دبي"}, Latitude: 25.2048, Longitude: 55.2708},
		{Meta: entity.Meta{ID: uuid.New(), Published: true}, City: entity.Localized{EN: "Riyadh"}, Latitude: 24.7136, Longitude: 46.6753},
	}
}

func TestOfficeService_FeatureCollection(t *testing.T) {
	fx := createTestOfficeService(t)
	ctx := context.Background()
	offices := testOffices()

	fx.offices.EXPECT().List(ctx, true).Return(offices, nil)

	fc, err := fx.service.FeatureCollection(ctx, entity.Locale{Tag: "ar", Dir: entity.DirectionRTL})
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, orb.Point{-0.1278, 51.5074}, first.Geometry)
	assert.Equal(t, offices[0].ID.String(), first.ID)
	assert.Equal(t, "لندن", first.Properties["city"])
	assert.Equal(t, "Riyadh", fc.Features[2].Properties["city"])
	assert.Contains(t, first.Properties["map_url"], "query=51.507400%2C-0.127800")
}

func TestOfficeService_NearestOrdersByDistance(t *testing.T) {
	fx := createTestOfficeService(t)
	ctx := context.Background()

	fx.offices.EXPECT().List(ctx, true).Return(testOffices(), nil)

	// Abu Dhabi
	nearby, err := fx.service.Nearest(ctx, 24.4539, 54.3773, 2)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, "Dubai", nearby[0].Office.City.EN)
	assert.Equal(t, "Riyadh", nearby[1].Office.City.EN)
	assert.InDelta(t, 125, nearby[0].DistanceKM, 10)
	assert.Less(t, nearby[0].DistanceKM, nearby[1].DistanceKM)
}

func TestOfficeService_NearestValidatesCoordinates(t *testing.T) {
	fx := createTestOfficeService(t)

	_, err := fx.service.Nearest(context.Background(), 91, 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Nearest(context.Background(), 0, -181, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfficeService_QRCode(t *testing.T) {
	fx := createTestOfficeService(t)
	ctx := context.Background()
	office := testOffices()[1]

	fx.offices.EXPECT().FindByID(ctx, office.ID).Return(office, nil)
	fx.qrcode.EXPECT().GeneratePNG(officeMapURL(office)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.QRCode(ctx, office.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestOfficeService_QRCodeErrors(t *testing.T) {
	fx := createTestOfficeService(t)
	ctx := context.Background()
	missing, draft, broken := uuid.New(), uuid.New(), uuid.New()

	fx.offices.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrContentNotFound)
	fx.offices.EXPECT().FindByID(ctx, draft).Return(&entity.Office{Meta: entity.Meta{ID: draft}}, nil)
	fx.offices.EXPECT().FindByID(ctx, broken).Return(&entity.Office{Meta: entity.Meta{ID: broken, Published: true}}, nil)
	fx.qrcode.EXPECT().GeneratePNG(officeMapURL(&entity.Office{})).Return(nil, errors.New("encoder failed"))

	_, err := fx.service.QRCode(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)

	_, err = fx.service.QRCode(ctx, draft)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)

	_, err = fx.service.QRCode(ctx, broken)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
