// Package domain defines the entities of the anime catalog and favorites
// application: the Anime value entity, its genres and airing status, and the
// per-user Favorite record. Entities validate and normalize themselves at
// construction so that every other layer can rely on their invariants.
package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ErrInvalidAnimeID is returned when an Anime is constructed with a
// non-positive id.
var ErrInvalidAnimeID = errors.New("anime id must be a positive number")

// fold lowercases s using Unicode case folding rules. A cases.Caser carries
// internal transform state and is not safe for concurrent use, so each call
// gets a fresh one.
func fold(s string) string {
	return cases.Fold().String(s)
}

// AnimeAttrs carries the optional attributes of an Anime. Zero values are
// valid and are normalized by NewAnime (genres deduplicated, numeric fields
// floored or clamped, text trimmed).
type AnimeAttrs struct {
	Genres     []Genre
	Popularity int
	Status     Status
	Episodes   int
	Season     string
	Year       int
	Studio     string
	Score      float64
}

// Anime is the catalog entity. It is immutable once constructed; the only
// legal way to obtain one is NewAnime, which enforces the id > 0 invariant
// and normalizes every field. JSON field names are the public API contract.
type Anime struct {
	ID         int       `json:"id"`
	Title      string    `json:"titulo"`
	Image      string    `json:"imagem"`
	Synopsis   string    `json:"sinopse"`
	Genres     []Genre   `json:"generos"`
	Popularity int       `json:"popularidade"`
	Status     Status    `json:"status"`
	Episodes   int       `json:"episodios"`
	Season     string    `json:"temporada"`
	Year       int       `json:"ano"`
	Studio     string    `json:"estudio"`
	Score      float64   `json:"nota"`
	CreatedAt  time.Time `json:"dataCriacao"`
}

// NewAnime constructs an Anime. It fails with ErrInvalidAnimeID when id <= 0.
// Genres are deduplicated case-insensitively preserving order, popularity and
// episode counts are floored at zero, the score is clamped to [0,10], text
// fields are trimmed, and a zero year defaults to the current year.
func NewAnime(id int, title, image, synopsis string, attrs AnimeAttrs) (*Anime, error) {
	if id <= 0 {
		return nil, ErrInvalidAnimeID
	}
	if attrs.Year == 0 {
		attrs.Year = time.Now().Year()
	}
	if attrs.Status == "" {
		attrs.Status = StatusFinished
	}
	a := &Anime{
		ID:         id,
		Title:      strings.TrimSpace(title),
		Image:      strings.TrimSpace(image),
		Synopsis:   strings.TrimSpace(synopsis),
		Genres:     dedupeGenres(attrs.Genres),
		Popularity: floorZero(attrs.Popularity),
		Status:     attrs.Status,
		Episodes:   floorZero(attrs.Episodes),
		Season:     strings.TrimSpace(attrs.Season),
		Year:       attrs.Year,
		Studio:     strings.TrimSpace(attrs.Studio),
		Score:      ClampRating(attrs.Score),
		CreatedAt:  time.Now().UTC(),
	}
	return a, nil
}

// GenreNames returns the genre names in their stored order.
func (a *Anime) GenreNames() []string {
	names := make([]string, len(a.Genres))
	for i, g := range a.Genres {
		names[i] = g.Name
	}
	return names
}

// MatchesCriterion reports whether the anime matches a free-text criterion.
// A blank criterion matches everything. The comparison is a case-folded
// substring test against title, synopsis, genre names, and studio.
func (a *Anime) MatchesCriterion(criterion string) bool {
	criterion = strings.TrimSpace(criterion)
	if criterion == "" {
		return true
	}
	needle := fold(criterion)
	if strings.Contains(fold(a.Title), needle) {
		return true
	}
	if strings.Contains(fold(a.Synopsis), needle) {
		return true
	}
	for _, g := range a.Genres {
		if strings.Contains(fold(g.Name), needle) {
			return true
		}
	}
	return strings.Contains(fold(a.Studio), needle)
}

// ClampRating restricts a rating or score to the [0,10] range.
func ClampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// dedupeGenres removes genres whose name already appeared (case-insensitive),
// keeping the first occurrence and the original order.
func dedupeGenres(gs []Genre) []Genre {
	out := make([]Genre, 0, len(gs))
	for _, g := range gs {
		dup := false
		for _, kept := range out {
			if kept.Equal(g) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, g)
		}
	}
	return out
}

// floorZero clamps negative counts to zero.
func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
