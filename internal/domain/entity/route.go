package entity

// RouteClass is the category a request path falls into before any handler runs.
type RouteClass string

const (
	// RouteClassStaticAsset is any path containing a file extension.
	RouteClassStaticAsset RouteClass = "static-asset"
	// RouteClassDashboard is the authenticated content dashboard.
	RouteClassDashboard RouteClass = "dashboard"
	// RouteClassBypass covers API, setup and server-internal paths.
	RouteClassBypass RouteClass = "bypass"
	// RouteClassLogin is the exact login path.
	RouteClassLogin RouteClass = "login"
	// RouteClassPublic is every locale-routed marketing page.
	RouteClassPublic RouteClass = "public"
)

// RequiresSession reports whether the class is resolved through the auth provider.
func (c RouteClass) RequiresSession() bool {
	return c == RouteClassDashboard || c == RouteClassLogin
}
