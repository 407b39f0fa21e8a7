package postgres

import (
	"atelier/internal/domain/entity"
	"atelier/internal/infra/persistence/model"
)

// --- Mapper Functions ---

func toMetaDomain(b model.Base) entity.Meta {
	return entity.Meta{
		ID:        b.ID,
		SortOrder: b.SortOrder,
		Published: b.Published,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func fromMetaDomain(m entity.Meta) model.Base {
	return model.Base{
		ID:        m.ID,
		SortOrder: m.SortOrder,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toLocalizedDomain(l model.Localized) entity.Localized {
	return entity.Localized{EN: l.EN, AR: l.AR}
}

func fromLocalizedDomain(l entity.Localized) model.Localized {
	return model.Localized{EN: l.EN, AR: l.AR}
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		Meta:        toMetaDomain(data.Base),
		Slug:        data.Slug,
		Title:       toLocalizedDomain(data.Title),
		Summary:     toLocalizedDomain(data.Summary),
		Description: toLocalizedDomain(data.Description),
		Category:    data.Category,
		Location:    toLocalizedDomain(data.Location),
		Year:        data.Year,
		CoverImage:  data.CoverImage,
		Gallery:     data.Gallery,
		Featured:    data.Featured,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		Base:        fromMetaDomain(data.Meta),
		Slug:        data.Slug,
		Title:       fromLocalizedDomain(data.Title),
		Summary:     fromLocalizedDomain(data.Summary),
		Description: fromLocalizedDomain(data.Description),
		Category:    data.Category,
		Location:    fromLocalizedDomain(data.Location),
		Year:        data.Year,
		CoverImage:  data.CoverImage,
		Gallery:     data.Gallery,
		Featured:    data.Featured,
	}
}

func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	if data == nil {
		return nil
	}

	return &entity.Testimonial{
		Meta:      toMetaDomain(data.Base),
		Author:    toLocalizedDomain(data.Author),
		Role:      toLocalizedDomain(data.Role),
		Quote:     toLocalizedDomain(data.Quote),
		AvatarURL: data.AvatarURL,
	}
}

func fromTestimonialDomain(data *entity.Testimonial) *model.TestimonialModel {
	if data == nil {
		return nil
	}

	return &model.TestimonialModel{
		Base:      fromMetaDomain(data.Meta),
		Author:    fromLocalizedDomain(data.Author),
		Role:      fromLocalizedDomain(data.Role),
		Quote:     fromLocalizedDomain(data.Quote),
		AvatarURL: data.AvatarURL,
	}
}

func toHeroSlideDomain(data *model.HeroSlideModel) *entity.HeroSlide {
	if data == nil {
		return nil
	}

	return &entity.HeroSlide{
		Meta:     toMetaDomain(data.Base),
		Title:    toLocalizedDomain(data.Title),
		Subtitle: toLocalizedDomain(data.Subtitle),
		ImageURL: data.ImageURL,
		LinkURL:  data.LinkURL,
	}
}

func fromHeroSlideDomain(data *entity.HeroSlide) *model.HeroSlideModel {
	if data == nil {
		return nil
	}

	return &model.HeroSlideModel{
		Base:     fromMetaDomain(data.Meta),
		Title:    fromLocalizedDomain(data.Title),
		Subtitle: fromLocalizedDomain(data.Subtitle),
		ImageURL: data.ImageURL,
		LinkURL:  data.LinkURL,
	}
}

func toOfficeDomain(data *model.OfficeModel) *entity.Office {
	if data == nil {
		return nil
	}

	return &entity.Office{
		Meta:      toMetaDomain(data.Base),
		City:      toLocalizedDomain(data.City),
		Address:   toLocalizedDomain(data.Address),
		Phone:     data.Phone,
		Email:     data.Email,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

func fromOfficeDomain(data *entity.Office) *model.OfficeModel {
	if data == nil {
		return nil
	}

	return &model.OfficeModel{
		Base:      fromMetaDomain(data.Meta),
		City:      fromLocalizedDomain(data.City),
		Address:   fromLocalizedDomain(data.Address),
		Phone:     data.Phone,
		Email:     data.Email,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		Meta:        toMetaDomain(data.Base),
		Title:       toLocalizedDomain(data.Title),
		Description: toLocalizedDomain(data.Description),
		Icon:        data.Icon,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		Base:        fromMetaDomain(data.Meta),
		Title:       fromLocalizedDomain(data.Title),
		Description: fromLocalizedDomain(data.Description),
		Icon:        data.Icon,
	}
}

func toWorkStageDomain(data *model.WorkStageModel) *entity.WorkStage {
	if data == nil {
		return nil
	}

	return &entity.WorkStage{
		Meta:        toMetaDomain(data.Base),
		Step:        data.Step,
		Title:       toLocalizedDomain(data.Title),
		Description: toLocalizedDomain(data.Description),
	}
}

func fromWorkStageDomain(data *entity.WorkStage) *model.WorkStageModel {
	if data == nil {
		return nil
	}

	return &model.WorkStageModel{
		Base:        fromMetaDomain(data.Meta),
		Step:        data.Step,
		Title:       fromLocalizedDomain(data.Title),
		Description: fromLocalizedDomain(data.Description),
	}
}

func toTeamMemberDomain(data *model.TeamMemberModel) *entity.TeamMember {
	if data == nil {
		return nil
	}

	return &entity.TeamMember{
		Meta:     toMetaDomain(data.Base),
		Name:     toLocalizedDomain(data.Name),
		Role:     toLocalizedDomain(data.Role),
		Bio:      toLocalizedDomain(data.Bio),
		PhotoURL: data.PhotoURL,
	}
}

func fromTeamMemberDomain(data *entity.TeamMember) *model.TeamMemberModel {
	if data == nil {
		return nil
	}

	return &model.TeamMemberModel{
		Base:     fromMetaDomain(data.Meta),
		Name:     fromLocalizedDomain(data.Name),
		Role:     fromLocalizedDomain(data.Role),
		Bio:      fromLocalizedDomain(data.Bio),
		PhotoURL: data.PhotoURL,
	}
}

func toSocialLinkDomain(data *model.SocialLinkModel) *entity.SocialLink {
	if data == nil {
		return nil
	}

	return &entity.SocialLink{
		Meta:     toMetaDomain(data.Base),
		Platform: data.Platform,
		URL:      data.URL,
	}
}

func fromSocialLinkDomain(data *entity.SocialLink) *model.SocialLinkModel {
	if data == nil {
		return nil
	}

	return &model.SocialLinkModel{
		Base:     fromMetaDomain(data.Meta),
		Platform: data.Platform,
		URL:      data.URL,
	}
}

func toContactDomain(data *model.ContactSubmissionModel) *entity.ContactSubmission {
	if data == nil {
		return nil
	}

	return &entity.ContactSubmission{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Company:   data.Company,
		Subject:   data.Subject,
		Message:   data.Message,
		Locale:    data.Locale,
		Language:  data.Language,
		Read:      data.Read,
		RemoteIP:  data.RemoteIP,
		CreatedAt: data.CreatedAt,
	}
}

func fromContactDomain(data *entity.ContactSubmission) *model.ContactSubmissionModel {
	if data == nil {
		return nil
	}

	return &model.ContactSubmissionModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Company:   data.Company,
		Subject:   data.Subject,
		Message:   data.Message,
		Locale:    data.Locale,
		Language:  data.Language,
		Read:      data.Read,
		RemoteIP:  data.RemoteIP,
		CreatedAt: data.CreatedAt,
	}
}
