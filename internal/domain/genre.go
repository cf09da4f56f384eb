package domain

import (
	"regexp"
	"strings"
)

// DefaultGenreColor is the gray fallback used when a genre color is missing
// or not a valid hex value.
const DefaultGenreColor = "#6B7280"

// hexColorRE accepts #RGB and #RRGGBB hex colors.
var hexColorRE = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// Genre is a single anime genre. Identity is the name, compared
// case-insensitively; two genres with names differing only in case are the
// same genre. The JSON field names are the public API contract consumed by
// the web client.
type Genre struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Color       string `json:"cor"`
	Icon        string `json:"icone"`
}

// NewGenre builds a Genre, trimming all text fields and replacing an invalid
// color with DefaultGenreColor.
func NewGenre(name, description, color, icon string) Genre {
	if !hexColorRE.MatchString(color) {
		color = DefaultGenreColor
	}
	return Genre{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Color:       color,
		Icon:        strings.TrimSpace(icon),
	}
}

// Equal reports whether two genres share the same identity (name,
// case-insensitive).
func (g Genre) Equal(other Genre) bool {
	return strings.EqualFold(g.Name, other.Name)
}
