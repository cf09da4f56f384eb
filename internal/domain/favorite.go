package domain

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Favorite records that a user has favorited an anime. Its identity is the
// (AnimeID, UserID) pair; AddedAt and the embedded Anime snapshot are fixed
// at creation and never change afterwards, only the personal rating and
// comment may be updated (through SetRating / SetComment).
type Favorite struct {
	AnimeID int       `json:"animeId"`
	UserID  string    `json:"usuarioId"`
	AddedAt time.Time `json:"dataAdicao"`
	Rating  float64   `json:"nota"`
	Comment string    `json:"comentario"`
	Anime   *Anime    `json:"anime"`
}

// NewFavorite creates a Favorite for the given anime snapshot. The rating is
// clamped to [0,10], the comment and user id are trimmed, and AddedAt is set
// to now.
func NewFavorite(animeID int, userID string, anime *Anime, rating float64, comment string) *Favorite {
	return &Favorite{
		AnimeID: animeID,
		UserID:  strings.TrimSpace(userID),
		AddedAt: time.Now().UTC(),
		Rating:  ClampRating(rating),
		Comment: strings.TrimSpace(comment),
		Anime:   anime,
	}
}

// SetRating replaces the personal rating, clamped to [0,10].
func (f *Favorite) SetRating(rating float64) {
	f.Rating = ClampRating(rating)
}

// SetComment replaces the personal comment, trimmed.
func (f *Favorite) SetComment(comment string) {
	f.Comment = strings.TrimSpace(comment)
}

// Matches reports whether the favorite matches a free-text criterion: either
// the anime snapshot matches it, or the user's own comment contains it
// (case-folded). A blank criterion matches.
func (f *Favorite) Matches(criterion string) bool {
	criterion = strings.TrimSpace(criterion)
	if criterion == "" {
		return true
	}
	if f.Anime != nil && f.Anime.MatchesCriterion(criterion) {
		return true
	}
	return strings.Contains(fold(f.Comment), fold(criterion))
}

// FavoriteStats summarizes a user's favorites as computed by the store:
// total count, average rating over ALL records (zero ratings included,
// rounded to two decimals) and the five most favorited genre names.
type FavoriteStats struct {
	Total         int      `json:"total"`
	AverageRating float64  `json:"notaMedia"`
	TopGenres     []string `json:"generosFavoritos"`
}

// TopGenres counts genre occurrences across the given favorites' anime
// snapshots and returns up to n names by descending count. Ties preserve
// first-encountered order.
func TopGenres(favs []*Favorite, n int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, f := range favs {
		if f.Anime == nil {
			continue
		}
		for _, g := range f.Anime.Genres {
			if _, seen := counts[g.Name]; !seen {
				order = append(order, g.Name)
			}
			counts[g.Name]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Round2 rounds a value to two decimal places, the precision used for all
// reported averages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
