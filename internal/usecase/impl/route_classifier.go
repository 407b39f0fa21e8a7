// Package impl contains the application-specific business rules implementations.
package impl

import (
	"strings"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"
)

type routeClassifier struct {
	rules []usecase.RouteRule
}

// NewRouteClassifier builds the classification table from the configured route prefixes.
func NewRouteClassifier(cfg *config.Config) usecase.RouteClassifier {
	return NewRouteClassifierWithRules(DefaultRouteRules(cfg.Routes))
}

// NewRouteClassifierWithRules wraps an explicit rule table.
func NewRouteClassifierWithRules(rules []usecase.RouteRule) usecase.RouteClassifier {
	return &routeClassifier{rules: rules}
}

// DefaultRouteRules returns the table in priority order:
// static asset, dashboard, bypass prefixes, exact login, and public by fallthrough.
func DefaultRouteRules(routes *config.RoutesConfig) []usecase.RouteRule {
	return []usecase.RouteRule{
		{
			Name:  "static-asset",
			Match: func(path string) bool { return strings.Contains(path, ".") },
			Class: entity.RouteClassStaticAsset,
		},
		{
			Name:  "dashboard",
			Match: hasPrefix(routes.Dashboard),
			Class: entity.RouteClassDashboard,
		},
		{
			Name:  "api",
			Match: hasPrefix(routes.API),
			Class: entity.RouteClassBypass,
		},
		{
			Name:  "setup",
			Match: hasPrefix(routes.Setup),
			Class: entity.RouteClassBypass,
		},
		{
			Name:  "internal",
			Match: hasPrefix(routes.Internal),
			Class: entity.RouteClassBypass,
		},
		{
			Name:  "login",
			Match: func(path string) bool { return path == routes.Login },
			Class: entity.RouteClassLogin,
		},
	}
}

func hasPrefix(prefix string) func(string) bool {
	return func(path string) bool {
		return strings.HasPrefix(path, prefix)
	}
}

// Classify returns the class of the first matching rule.
func (c *routeClassifier) Classify(path string) entity.RouteClass {
	for _, rule := range c.rules {
		if rule.Match(path) {
			return rule.Class
		}
	}

	return entity.RouteClassPublic
}

// Rules returns a copy of the table.
func (c *routeClassifier) Rules() []usecase.RouteRule {
	rules := make([]usecase.RouteRule, len(c.rules))
	copy(rules, c.rules)

	return rules
}
