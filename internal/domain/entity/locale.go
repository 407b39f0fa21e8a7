package entity

// TextDirection is the writing direction of a locale.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// Locale is one of the site's supported languages.
type Locale struct {
	Tag string        `json:"tag"`
	Dir TextDirection `json:"dir"`
}

// IsRTL reports whether the locale renders right-to-left.
func (l Locale) IsRTL() bool {
	return l.Dir == DirectionRTL
}

// Localized holds a text value in every content language.
type Localized struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the value for the locale tag, falling back to English when the
// translation is missing.
func (l Localized) In(tag string) string {
	if tag == "ar" && l.AR != "" {
		return l.AR
	}

	return l.EN
}
