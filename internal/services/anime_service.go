// Package services – AnimeService
//
// This file implements the AnimeService, which adapts raw upstream catalog
// records into domain Anime entities and applies a short TTL cache to the two
// hot paths (popular page 1, airing page 1) and the genre list. Pages other
// than the first, genre-filtered listings, free-text search, and details
// always hit the gateway.
//
// All defaulting of optional upstream fields happens in exactly one place,
// mediaToAnime, so the rest of the application only ever sees fully formed
// entities.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/aniteca/go-anime-backend/internal/anilist"
	"github.com/aniteca/go-anime-backend/internal/cache"
	"github.com/aniteca/go-anime-backend/internal/domain"
)

// placeholderTitle is shown when none of the upstream title variants is set.
const placeholderTitle = "Título Desconhecido"

// defaultCatalogTTL is the lifetime of the hot-path caches.
const defaultCatalogTTL = 5 * time.Minute

// Catalog defines the gateway contract required by AnimeService.
type Catalog interface {
	// Popular returns a page of the most popular anime.
	Popular(ctx context.Context, page, perPage int) ([]anilist.Media, error)

	// Airing returns a page of currently releasing anime.
	Airing(ctx context.Context, page, perPage int) ([]anilist.Media, error)

	// ByGenre returns a page of anime filtered by genre name.
	ByGenre(ctx context.Context, genre string, page, perPage int) ([]anilist.Media, error)

	// Search returns a page of anime matching a free-text term.
	Search(ctx context.Context, term string, page, perPage int) ([]anilist.Media, error)

	// Details returns the full record for one anime id, or
	// anilist.ErrNotFound when the id does not exist upstream.
	Details(ctx context.Context, id int) (*anilist.Media, error)

	// Genres returns the genre name collection.
	Genres(ctx context.Context) ([]string, error)
}

// AnimeService provides catalog read operations mapped into domain entities.
// The popular and airing caches cover page 1 only; the genre cache layers on
// top of the gateway's own (the double caching is a known, tolerated
// inefficiency inherited from the service's contract).
type AnimeService struct {
	catalog Catalog

	popular *cache.Slot[[]*domain.Anime]
	airing  *cache.Slot[[]*domain.Anime]
	genres  *cache.Slot[[]string]
}

// AnimeOption configures an AnimeService.
type AnimeOption func(*animeConfig)

type animeConfig struct {
	ttl time.Duration
	now func() time.Time
}

// WithCatalogTTL overrides the hot-path cache TTL.
func WithCatalogTTL(ttl time.Duration) AnimeOption {
	return func(c *animeConfig) { c.ttl = ttl }
}

// WithCatalogClock injects the time source used by the caches. For tests.
func WithCatalogClock(now func() time.Time) AnimeOption {
	return func(c *animeConfig) { c.now = now }
}

// NewAnimeService constructs an AnimeService over the given gateway.
func NewAnimeService(catalog Catalog, opts ...AnimeOption) *AnimeService {
	cfg := animeConfig{ttl: defaultCatalogTTL, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AnimeService{
		catalog: catalog,
		popular: cache.NewSlot[[]*domain.Anime](cfg.ttl, cache.WithClock[[]*domain.Anime](cfg.now)),
		airing:  cache.NewSlot[[]*domain.Anime](cfg.ttl, cache.WithClock[[]*domain.Anime](cfg.now)),
		genres:  cache.NewSlot[[]string](cfg.ttl, cache.WithClock[[]string](cfg.now)),
	}
}

// Popular returns a page of the most popular anime. Page 1 is served from the
// cache while valid; every other page always hits the gateway and never
// touches the cache.
func (s *AnimeService) Popular(ctx context.Context, page, limit int) ([]*domain.Anime, error) {
	if page == 1 {
		return s.popular.Get(ctx, func(ctx context.Context) ([]*domain.Anime, error) {
			ms, err := s.catalog.Popular(ctx, page, limit)
			if err != nil {
				return nil, err
			}
			return s.mapMedia(ms)
		})
	}
	ms, err := s.catalog.Popular(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return s.mapMedia(ms)
}

// Airing returns a page of currently releasing anime with the same caching
// contract as Popular, on an independent cache slot.
func (s *AnimeService) Airing(ctx context.Context, page, limit int) ([]*domain.Anime, error) {
	if page == 1 {
		return s.airing.Get(ctx, func(ctx context.Context) ([]*domain.Anime, error) {
			ms, err := s.catalog.Airing(ctx, page, limit)
			if err != nil {
				return nil, err
			}
			return s.mapMedia(ms)
		})
	}
	ms, err := s.catalog.Airing(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return s.mapMedia(ms)
}

// ByGenre returns a page of anime in the given genre. Never cached.
func (s *AnimeService) ByGenre(ctx context.Context, genre string, page, limit int) ([]*domain.Anime, error) {
	ms, err := s.catalog.ByGenre(ctx, genre, page, limit)
	if err != nil {
		return nil, err
	}
	return s.mapMedia(ms)
}

// Search returns a page of anime matching the term. Never cached. Minimum
// term length is validated by the HTTP layer before this is called.
func (s *AnimeService) Search(ctx context.Context, term string, page, limit int) ([]*domain.Anime, error) {
	ms, err := s.catalog.Search(ctx, term, page, limit)
	if err != nil {
		return nil, err
	}
	return s.mapMedia(ms)
}

// Details fetches the full record for one anime, always fresh. Returns
// ErrAnimeNotFound when the id does not exist upstream.
func (s *AnimeService) Details(ctx context.Context, id int) (*domain.Anime, error) {
	m, err := s.catalog.Details(ctx, id)
	if err != nil {
		if errors.Is(err, anilist.ErrNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}
	return mediaToAnime(*m)
}

// Genres returns the genre name list, cached with the hot-path TTL.
func (s *AnimeService) Genres(ctx context.Context) ([]string, error) {
	return s.genres.Get(ctx, func(ctx context.Context) ([]string, error) {
		return s.catalog.Genres(ctx)
	})
}

// InvalidateCache drops all three cache slots. Exposed for tests and
// administrative resets.
func (s *AnimeService) InvalidateCache() {
	s.popular.Invalidate()
	s.airing.Invalidate()
	s.genres.Invalidate()
}

// mapMedia converts a raw media list into domain entities. A record that
// cannot form a valid entity (missing or non-positive id) fails the whole
// list.
func (s *AnimeService) mapMedia(ms []anilist.Media) ([]*domain.Anime, error) {
	out := make([]*domain.Anime, len(ms))
	for i, m := range ms {
		a, err := mediaToAnime(m)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// mediaToAnime applies the defaulting rules for optional upstream fields:
// title falls back romaji → english → native → placeholder, the image falls
// back large → medium → empty, the status string is parsed with a FINISHED
// fallback, and numeric fields pass through the entity's own normalization
// (zero floors, score clamped to [0,10]).
func mediaToAnime(m anilist.Media) (*domain.Anime, error) {
	title := m.Title.Romaji
	if title == "" {
		title = m.Title.English
	}
	if title == "" {
		title = m.Title.Native
	}
	if title == "" {
		title = placeholderTitle
	}

	image := m.CoverImage.Large
	if image == "" {
		image = m.CoverImage.Medium
	}

	genres := make([]domain.Genre, len(m.Genres))
	for i, name := range m.Genres {
		genres[i] = domain.NewGenre(name, "", "", "")
	}

	studio := ""
	if len(m.Studios.Nodes) > 0 {
		studio = m.Studios.Nodes[0].Name
	}

	return domain.NewAnime(m.ID, title, image, m.Description, domain.AnimeAttrs{
		Genres:     genres,
		Popularity: m.Popularity,
		Status:     domain.ParseStatus(m.Status),
		Episodes:   m.Episodes,
		Season:     m.Season,
		Year:       m.SeasonYear,
		Studio:     studio,
		Score:      float64(m.AverageScore),
	})
}
