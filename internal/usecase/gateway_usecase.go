package usecase

import (
	"context"
	"net/http"

	"atelier/internal/domain/entity"
)

// RouteRule is one row of the classification table. Rules are evaluated top to
// bottom and the first match wins.
type RouteRule struct {
	Name  string
	Match func(path string) bool
	Class entity.RouteClass
}

// RouteClassifier assigns every request path exactly one route class.
type RouteClassifier interface {
	// Classify returns the class of the first matching rule, or public.
	Classify(path string) entity.RouteClass

	// Rules returns the ordered table used by Classify.
	Rules() []RouteRule
}

// LocaleResolver maps public paths onto their locale-prefixed internal form.
type LocaleResolver interface {
	// Resolve returns the active locale and the internally routed path.
	// acceptLanguage is consulted only when negotiation is enabled.
	Resolve(path, acceptLanguage string) (entity.Locale, string)

	// Lookup returns the supported locale for tag.
	Lookup(tag string) (entity.Locale, bool)

	// Default returns the fallback locale.
	Default() entity.Locale

	// Supported lists every locale in configuration order.
	Supported() []entity.Locale
}

// SessionResult is the outcome of a session check. Err records a swallowed
// provider failure; it never makes the result authenticated.
type SessionResult struct {
	Authenticated bool
	User          *entity.User
	Cookies       []*http.Cookie
	Err           error
}

// SessionValidator decides whether request cookies carry a live session.
type SessionValidator interface {
	// Validate makes at most one provider call and never returns an error.
	Validate(ctx context.Context, cookies []*http.Cookie) *SessionResult
}

// GatewayAction is what the gateway does with a request.
type GatewayAction string

const (
	// ActionPass forwards the request unchanged.
	ActionPass GatewayAction = "pass"
	// ActionRedirect answers with a redirect to Location.
	ActionRedirect GatewayAction = "redirect"
	// ActionRewrite forwards the request with its path replaced by Path.
	ActionRewrite GatewayAction = "rewrite"
)

// Decision is the gateway's verdict for one request.
type Decision struct {
	Class    entity.RouteClass
	Action   GatewayAction
	Location string
	Path     string
	Locale   *entity.Locale
	User     *entity.User
	Cookies  []*http.Cookie
	AuthErr  error
}

// RequestGateway runs before routing for every request.
type RequestGateway interface {
	Decide(ctx context.Context, r *http.Request) *Decision
}
