package postgres

import "go.uber.org/fx"

// Module provides the database handle and every repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewHealthChecker,
		NewProjectRepository,
		NewTestimonialRepository,
		NewHeroSlideRepository,
		NewOfficeRepository,
		NewServiceRepository,
		NewWorkStageRepository,
		NewTeamMemberRepository,
		NewSocialLinkRepository,
		NewContactRepository,
	),
)
