package impl

import (
	"slices"
	"strings"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"golang.org/x/text/language"
)

type localeResolver struct {
	supported []entity.Locale
	byTag     map[string]entity.Locale
	fallback  entity.Locale
	negotiate bool
	matcher   language.Matcher
}

// NewLocaleResolver builds the resolver from the configured locale set.
func NewLocaleResolver(cfg *config.Config) usecase.LocaleResolver {
	lc := cfg.Locale

	r := &localeResolver{
		byTag:     make(map[string]entity.Locale, len(lc.Supported)),
		negotiate: lc.Negotiate,
	}

	tags := make([]language.Tag, 0, len(lc.Supported))
	for _, tag := range lc.Supported {
		loc := entity.Locale{Tag: tag, Dir: entity.DirectionLTR}
		if slices.Contains(lc.RTL, tag) {
			loc.Dir = entity.DirectionRTL
		}

		r.supported = append(r.supported, loc)
		r.byTag[tag] = loc
		tags = append(tags, language.Make(tag))
	}

	r.fallback = r.byTag[lc.Default]
	r.matcher = language.NewMatcher(tags)

	return r
}

// Resolve keeps a path whose first segment is a supported locale and prefixes
// every other path with the fallback locale.
func (r *localeResolver) Resolve(path, acceptLanguage string) (entity.Locale, string) {
	if loc, ok := r.byTag[firstSegment(path)]; ok {
		return loc, path
	}

	loc := r.fallback
	if r.negotiate && acceptLanguage != "" {
		loc = r.negotiateLocale(acceptLanguage)
	}

	if path == "" || path == "/" {
		return loc, "/" + loc.Tag
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return loc, "/" + loc.Tag + path
}

func (r *localeResolver) negotiateLocale(acceptLanguage string) entity.Locale {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return r.fallback
	}

	_, idx, confidence := r.matcher.Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(r.supported) {
		return r.fallback
	}

	return r.supported[idx]
}

func (r *localeResolver) Lookup(tag string) (entity.Locale, bool) {
	loc, ok := r.byTag[tag]

	return loc, ok
}

func (r *localeResolver) Default() entity.Locale {
	return r.fallback
}

func (r *localeResolver) Supported() []entity.Locale {
	return slices.Clone(r.supported)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}

	return path
}
