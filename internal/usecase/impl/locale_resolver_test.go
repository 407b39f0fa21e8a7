package impl

import (
	"testing"

	"atelier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLocaleResolver_Resolve(t *testing.T) {
	resolver := NewLocaleResolver(newTestConfig())

	tests := []struct {
		name       string
		path       string
		wantTag    string
		wantDir    entity.TextDirection
		wantInPath string
	}{
		{"arabic prefix kept", "/ar/services", "ar", entity.DirectionRTL, "/ar/services"},
		{"english prefix kept", "/en/portfolio", "en", entity.DirectionLTR, "/en/portfolio"},
		{"bare locale", "/ar", "ar", entity.DirectionRTL, "/ar"},
		{"unprefixed page", "/about-us", "en", entity.DirectionLTR, "/en/about-us"},
		{"root", "/", "en", entity.DirectionLTR, "/en"},
		{"unknown locale", "/unknown-locale/services", "en", entity.DirectionLTR, "/en/unknown-locale/services"},
		{"lookalike segment", "/arabic", "en", entity.DirectionLTR, "/en/arabic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, path := resolver.Resolve(tt.path, "")
			assert.Equal(t, tt.wantTag, locale.Tag)
			assert.Equal(t, tt.wantDir, locale.Dir)
			assert.Equal(t, tt.wantInPath, path)
		})
	}
}

func TestLocaleResolver_Idempotent(t *testing.T) {
	resolver := NewLocaleResolver(newTestConfig())

	first, firstPath := resolver.Resolve("/ar/services", "")
	second, secondPath := resolver.Resolve("/ar/services", "")
	assert.Equal(t, first, second)
	assert.Equal(t, firstPath, secondPath)
	assert.Equal(t, "ar", first.Tag)

	// Resolving an already rewritten path changes nothing.
	_, rewritten := resolver.Resolve("/about-us", "")
	locale, again := resolver.Resolve(rewritten, "")
	assert.Equal(t, rewritten, again)
	assert.Equal(t, "en", locale.Tag)
}

func TestLocaleResolver_AcceptLanguageIgnoredByDefault(t *testing.T) {
	resolver := NewLocaleResolver(newTestConfig())

	locale, path := resolver.Resolve("/services", "ar-EG,ar;q=0.9")
	assert.Equal(t, "en", locale.Tag)
	assert.Equal(t, "/en/services", path)
}

func TestLocaleResolver_Negotiation(t *testing.T) {
	cfg := newTestConfig()
	cfg.Locale.Negotiate = true
	resolver := NewLocaleResolver(cfg)

	locale, path := resolver.Resolve("/services", "ar-EG,ar;q=0.9,en;q=0.5")
	assert.Equal(t, "ar", locale.Tag)
	assert.True(t, locale.IsRTL())
	assert.Equal(t, "/ar/services", path)

	locale, path = resolver.Resolve("/services", "fr-FR")
	assert.Equal(t, "en", locale.Tag)
	assert.Equal(t, "/en/services", path)

	locale, path = resolver.Resolve("/services", "not a header;;;")
	assert.Equal(t, "en", locale.Tag)
	assert.Equal(t, "/en/services", path)

	// An explicit prefix always wins over the header.
	locale, _ = resolver.Resolve("/en/services", "ar")
	assert.Equal(t, "en", locale.Tag)
}

func TestLocaleResolver_Lookup(t *testing.T) {
	resolver := NewLocaleResolver(newTestConfig())

	locale, ok := resolver.Lookup("ar")
	assert.True(t, ok)
	assert.Equal(t, entity.DirectionRTL, locale.Dir)

	_, ok = resolver.Lookup("fr")
	assert.False(t, ok)

	assert.Equal(t, "en", resolver.Default().Tag)
	assert.Len(t, resolver.Supported(), 2)
}
