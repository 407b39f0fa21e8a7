package impl

import (
	"context"
	"net/http"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"
)

type gatewayService struct {
	classifier usecase.RouteClassifier
	locales    usecase.LocaleResolver
	sessions   usecase.SessionValidator
	routes     *config.RoutesConfig
}

// NewGatewayService composes the classifier, locale resolver and session validator.
func NewGatewayService(
	classifier usecase.RouteClassifier,
	locales usecase.LocaleResolver,
	sessions usecase.SessionValidator,
	cfg *config.Config,
) usecase.RequestGateway {
	return &gatewayService{
		classifier: classifier,
		locales:    locales,
		sessions:   sessions,
		routes:     cfg.Routes,
	}
}

// Decide classifies the path first; only dashboard and login requests reach
// the session validator, and only public requests reach the locale resolver.
func (g *gatewayService) Decide(ctx context.Context, r *http.Request) *usecase.Decision {
	path := r.URL.Path
	class := g.classifier.Classify(path)

	switch class {
	case entity.RouteClassDashboard, entity.RouteClassLogin:
		return g.authGate(ctx, r, class)
	case entity.RouteClassPublic:
		return g.localeRoute(r, class)
	default:
		return &usecase.Decision{Class: class, Action: usecase.ActionPass, Path: path}
	}
}

func (g *gatewayService) authGate(ctx context.Context, r *http.Request, class entity.RouteClass) *usecase.Decision {
	session := g.sessions.Validate(ctx, r.Cookies())

	decision := &usecase.Decision{
		Class:   class,
		Action:  usecase.ActionPass,
		Path:    r.URL.Path,
		User:    session.User,
		Cookies: session.Cookies,
		AuthErr: session.Err,
	}

	switch {
	case class == entity.RouteClassDashboard && !session.Authenticated:
		decision.Action = usecase.ActionRedirect
		decision.Location = g.routes.Login
		decision.User = nil
	case class == entity.RouteClassLogin && session.Authenticated:
		decision.Action = usecase.ActionRedirect
		decision.Location = g.routes.Dashboard
	}

	return decision
}

func (g *gatewayService) localeRoute(r *http.Request, class entity.RouteClass) *usecase.Decision {
	locale, internalPath := g.locales.Resolve(r.URL.Path, r.Header.Get("Accept-Language"))

	decision := &usecase.Decision{
		Class:  class,
		Action: usecase.ActionPass,
		Path:   internalPath,
		Locale: &locale,
	}
	if internalPath != r.URL.Path {
		decision.Action = usecase.ActionRewrite
	}

	return decision
}
