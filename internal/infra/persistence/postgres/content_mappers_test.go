package postgres

import (
	"testing"
	"time"

	"atelier/internal/domain/entity"
	"atelier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMapperKeepsEveryColumn(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	project := &entity.Project{
		Meta: entity.Meta{
			ID:        uuid.New(),
			SortOrder: 3,
			Published: true,
			CreatedAt: now,
			UpdatedAt: now.Add(time.Hour),
		},
		Slug:        "harbour-pavilion",
		Title:       entity.Localized{EN: "Harbour Pavilion", AR: "جناح المرفأ"},
		Summary:     entity.Localized{EN: "A timber pavilion"},
		Description: entity.Localized{EN: "<p>Timber</p>"},
		Category:    "cultural",
		Location:    entity.Localized{EN: "Doha"},
		Year:        2024,
		CoverImage:  "media/cover.jpg",
		Gallery:     []string{"media/1.jpg", "media/2.jpg"},
		Featured:    true,
	}

	row := fromProjectDomain(project)
	require.NotNil(t, row)
	assert.Equal(t, project.ID, row.ID)
	assert.Equal(t, 3, row.SortOrder)
	assert.Equal(t, model.Localized{EN: "Harbour Pavilion", AR: "جناح المرفأ"}, row.Title)
	assert.Equal(t, project.Gallery, row.Gallery)

	assert.Equal(t, project, toProjectDomain(row))
}

func TestMappersHandleNil(t *testing.T) {
	assert.Nil(t, toProjectDomain(nil))
	assert.Nil(t, fromProjectDomain(nil))
	assert.Nil(t, toOfficeDomain(nil))
	assert.Nil(t, fromSocialLinkDomain(nil))
	assert.Nil(t, toContactDomain(nil))
}

func TestOfficeMapper(t *testing.T) {
	office := &entity.Office{
		Meta:      entity.Meta{ID: uuid.New(), Published: true},
		City:      entity.Localized{EN: "Dubai", AR: "دبي"},
		Address:   entity.Localized{EN: "Alserkal Avenue"},
		Phone:     "+971 4 000 0000",
		Email:     "dubai@example.com",
		Latitude:  25.1413,
		Longitude: 55.2246,
	}

	assert.Equal(t, office, toOfficeDomain(fromOfficeDomain(office)))
}

func TestContactMapper(t *testing.T) {
	submission := &entity.ContactSubmission{
		ID:       uuid.New(),
		Name:     "Layla",
		Email:    "layla@example.com",
		Message:  "We are planning a villa",
		Locale:   "en",
		Language: "en",
		RemoteIP: "203.0.113.9",
	}

	row := fromContactDomain(submission)
	assert.Equal(t, "203.0.113.9", row.RemoteIP)
	assert.Equal(t, submission, toContactDomain(row))
}
