// Package services – FavoriteService
//
// This file implements the FavoriteService, which enforces the business
// invariants around favoriting: a user may favorite an anime at most once,
// adding fetches a fresh snapshot of the anime from the catalog, updates only
// ever touch the personal rating and comment, and removal of an absent
// favorite is an error. It composes the favorites store with the catalog
// service and computes the user-facing statistics.
package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aniteca/go-anime-backend/internal/domain"
	"github.com/aniteca/go-anime-backend/internal/repo"
)

// FavoriteRepo defines the store contract required by FavoriteService.
type FavoriteRepo interface {
	// Save upserts a favorite by its (animeID, userID) key.
	Save(f *domain.Favorite)

	// Get returns a copy of the favorite for the pair, or false when absent.
	Get(animeID int, userID string) (*domain.Favorite, bool)

	// Update applies the merge callback to an existing favorite atomically
	// and returns the result; repo.ErrNotFound when absent.
	Update(animeID int, userID string, apply func(*domain.Favorite)) (*domain.Favorite, error)

	// Delete removes the pair and reports whether a record was removed.
	Delete(animeID int, userID string) bool

	// ListByUser returns the user's favorites ordered by AddedAt descending.
	ListByUser(userID string) []*domain.Favorite
}

// AnimeDetails is the slice of the catalog service the coordinator needs.
type AnimeDetails interface {
	Details(ctx context.Context, id int) (*domain.Anime, error)
}

// UserStats is the user-facing statistics payload. Unlike the store's own
// FavoriteStats, the average here treats a zero rating as "unrated" and
// excludes it from both numerator and denominator. The two computations
// intentionally coexist.
type UserStats struct {
	Total         int                `json:"total"`
	AverageRating float64            `json:"notaMedia"`
	TopGenres     []string           `json:"generosFavoritos"`
	MostRecent    []*domain.Favorite `json:"ultimosAdicionados"`
}

// FavoriteUpdate carries the optional fields of an update request. Nil means
// "leave unchanged".
type FavoriteUpdate struct {
	Rating  *float64
	Comment *string
}

// FavoriteService coordinates the favorites store and the anime catalog.
// Safe for concurrent use.
type FavoriteService struct {
	Repo    FavoriteRepo
	Catalog AnimeDetails

	// mu serializes the duplicate check against the save in Add so that
	// concurrent adds for the same pair produce exactly one success.
	mu sync.Mutex
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(r FavoriteRepo, catalog AnimeDetails) *FavoriteService {
	return &FavoriteService{Repo: r, Catalog: catalog}
}

// Add favorites an anime for a user. It fails with ErrFavoriteExists when the
// pair is already stored, fetches a fresh snapshot from the catalog
// (propagating ErrAnimeNotFound when the anime does not exist upstream), and
// persists a new record with AddedAt set to now.
func (s *FavoriteService) Add(ctx context.Context, animeID int, userID string, rating float64, comment string) (*domain.Favorite, error) {
	if _, ok := s.Repo.Get(animeID, userID); ok {
		return nil, ErrFavoriteExists
	}

	anime, err := s.Catalog.Details(ctx, animeID)
	if err != nil {
		return nil, err
	}

	fav := domain.NewFavorite(animeID, userID, anime, rating, comment)

	// Re-check under the lock: another request may have added the same pair
	// while the catalog call was in flight.
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Repo.Get(animeID, userID); ok {
		return nil, ErrFavoriteExists
	}
	s.Repo.Save(fav)
	return fav, nil
}

// Remove deletes a favorite. Fails with ErrFavoriteNotFound when absent.
func (s *FavoriteService) Remove(animeID int, userID string) error {
	if !s.Repo.Delete(animeID, userID) {
		return ErrFavoriteNotFound
	}
	return nil
}

// Update merges the provided fields into an existing favorite. Only the
// rating and comment may change; AddedAt and the anime snapshot are
// immutable. The merge runs inside the store, so concurrent updates on the
// same pair serialize and readers never see a half-applied one. Fails with
// ErrFavoriteNotFound when the pair is absent.
func (s *FavoriteService) Update(animeID int, userID string, upd FavoriteUpdate) (*domain.Favorite, error) {
	fav, err := s.Repo.Update(animeID, userID, func(f *domain.Favorite) {
		if upd.Rating != nil {
			f.SetRating(*upd.Rating)
		}
		if upd.Comment != nil {
			f.SetComment(*upd.Comment)
		}
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return fav, nil
}

// Exists reports whether the user has favorited the anime.
func (s *FavoriteService) Exists(animeID int, userID string) bool {
	_, ok := s.Repo.Get(animeID, userID)
	return ok
}

// Get returns the favorite for the pair, or false when absent. Absence is
// not an error here; the caller decides how to present it.
func (s *FavoriteService) Get(animeID int, userID string) (*domain.Favorite, bool) {
	return s.Repo.Get(animeID, userID)
}

// List returns all of the user's favorites, most recent first.
func (s *FavoriteService) List(userID string) []*domain.Favorite {
	return s.Repo.ListByUser(userID)
}

// Stats computes the user-facing statistics: total count, average rating
// over rated records only (zeros excluded, rounded to two decimals), the
// five most favorited genres, and the five most recently added favorites.
func (s *FavoriteService) Stats(userID string) UserStats {
	favs := s.Repo.ListByUser(userID)
	if len(favs) == 0 {
		return UserStats{TopGenres: []string{}, MostRecent: []*domain.Favorite{}}
	}

	var sum float64
	var rated int
	for _, f := range favs {
		if f.Rating > 0 {
			sum += f.Rating
			rated++
		}
	}
	var avg float64
	if rated > 0 {
		avg = domain.Round2(sum / float64(rated))
	}

	recent := favs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return UserStats{
		Total:         len(favs),
		AverageRating: avg,
		TopGenres:     domain.TopGenres(favs, 5),
		MostRecent:    recent,
	}
}

// Search returns the user's favorites matching a free-text criterion: a
// case-insensitive substring match against the anime's searchable text or
// the favorite's own comment. A blank criterion returns everything.
func (s *FavoriteService) Search(userID, criterion string) []*domain.Favorite {
	favs := s.Repo.ListByUser(userID)
	out := make([]*domain.Favorite, 0, len(favs))
	for _, f := range favs {
		if f.Matches(criterion) {
			out = append(out, f)
		}
	}
	return out
}

// SortByRating returns the user's favorites sorted by personal rating.
// direction is "asc" or "desc" (default). The sort is stable: ties keep the
// store's most-recent-first order.
func (s *FavoriteService) SortByRating(userID, direction string) []*domain.Favorite {
	favs := s.Repo.ListByUser(userID)
	asc := direction == "asc"
	sort.SliceStable(favs, func(i, j int) bool {
		if asc {
			return favs[i].Rating < favs[j].Rating
		}
		return favs[i].Rating > favs[j].Rating
	})
	return favs
}
