// Package repo provides the in-memory persistence layer for favorites.
//
// Favorites lives for the duration of the process; there is intentionally no
// persistence across restarts. The store is the exclusive owner of the
// canonical records: readers always receive detached copies, and the only way
// to change a stored record is through Save or the merge callback of Update,
// both of which run under the store's lock.
package repo

import (
	"errors"
	"sort"
	"sync"

	"github.com/aniteca/go-anime-backend/internal/domain"
)

// ErrNotFound is returned by Update when the favorite does not exist.
var ErrNotFound = errors.New("favorite not found")

// key is the composite identity of a favorite. A struct key avoids the
// delimiter-collision problem of concatenated string keys for user-supplied
// ids.
type key struct {
	animeID int
	userID  string
}

// entry pairs a stored favorite with its insertion sequence number, used to
// break ordering ties deterministically (first inserted wins).
type entry struct {
	fav *domain.Favorite
	seq uint64
}

// Favorites is a mutex-guarded in-memory favorite store keyed by
// (animeID, userID). Safe for concurrent use; every operation is atomic with
// respect to its key, and no caller ever holds a canonical record.
type Favorites struct {
	mu    sync.RWMutex
	items map[key]*entry
	seq   uint64
}

// clone detaches a favorite from the store. The copy is shallow: the embedded
// Anime snapshot is fixed at creation and never mutated, so sharing it is
// safe.
func clone(f *domain.Favorite) *domain.Favorite {
	c := *f
	return &c
}

// NewFavorites creates an empty store.
func NewFavorites() *Favorites {
	return &Favorites{items: make(map[key]*entry)}
}

// Save upserts a favorite by its composite key. It never fails: an existing
// record is overwritten in place (keeping its insertion order), duplicate
// prevention is the service layer's responsibility. The store keeps its own
// copy, so the caller's record stays detached after the call.
func (s *Favorites) Save(f *domain.Favorite) {
	k := key{f.AnimeID, f.UserID}
	c := clone(f)
	s.mu.Lock()
	if e, ok := s.items[k]; ok {
		e.fav = c
	} else {
		s.seq++
		s.items[k] = &entry{fav: c, seq: s.seq}
	}
	s.mu.Unlock()
}

// Get returns a copy of the favorite for (animeID, userID), or false when
// absent.
func (s *Favorites) Get(animeID int, userID string) (*domain.Favorite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[key{animeID, userID}]
	if !ok {
		return nil, false
	}
	return clone(e.fav), true
}

// Update merges changes into an existing favorite. The apply callback runs
// under the store's write lock against a private copy of the record, so
// concurrent updates on the same key serialize and readers never observe a
// half-applied merge. Fails with ErrNotFound when the key is not present;
// on success the updated record is returned as a detached copy.
func (s *Favorites) Update(animeID int, userID string, apply func(*domain.Favorite)) (*domain.Favorite, error) {
	k := key{animeID, userID}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[k]
	if !ok {
		return nil, ErrNotFound
	}
	next := clone(e.fav)
	apply(next)
	e.fav = next
	return clone(next), nil
}

// Delete removes the favorite for (animeID, userID) and reports whether a
// record was actually removed. It never fails for a missing key.
func (s *Favorites) Delete(animeID int, userID string) bool {
	k := key{animeID, userID}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	return true
}

// ListByUser returns copies of all favorites of a user ordered by AddedAt
// descending; records added at the same instant keep their insertion order.
func (s *Favorites) ListByUser(userID string) []*domain.Favorite {
	// Snapshot under the lock; the sort below works on detached copies only.
	s.mu.RLock()
	rows := make([]entry, 0)
	for k, e := range s.items {
		if k.userID == userID {
			rows = append(rows, entry{fav: clone(e.fav), seq: e.seq})
		}
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.fav.AddedAt.Equal(b.fav.AddedAt) {
			return a.fav.AddedAt.After(b.fav.AddedAt)
		}
		return a.seq < b.seq
	})

	out := make([]*domain.Favorite, len(rows))
	for i, r := range rows {
		out[i] = r.fav
	}
	return out
}

// ListByAnime returns copies of every user's favorite for a given anime,
// unordered.
func (s *Favorites) ListByAnime(animeID int) []*domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Favorite, 0)
	for k, e := range s.items {
		if k.animeID == animeID {
			out = append(out, clone(e.fav))
		}
	}
	return out
}

// All returns copies of every stored favorite, unordered. Useful for tests
// and diagnostics.
func (s *Favorites) All() []*domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Favorite, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, clone(e.fav))
	}
	return out
}

// UserStats computes store-level statistics for a user: total favorites,
// average rating over ALL records (zero ratings included) rounded to two
// decimals, and the five most frequent genre names. Genre ties keep the
// order in which genres were first encountered while counting.
func (s *Favorites) UserStats(userID string) domain.FavoriteStats {
	favs := s.ListByUser(userID)
	if len(favs) == 0 {
		return domain.FavoriteStats{TopGenres: []string{}}
	}

	var sum float64
	for _, f := range favs {
		sum += f.Rating
	}

	return domain.FavoriteStats{
		Total:         len(favs),
		AverageRating: domain.Round2(sum / float64(len(favs))),
		TopGenres:     domain.TopGenres(favs, 5),
	}
}

// Clear removes every record. Intended for tests.
func (s *Favorites) Clear() {
	s.mu.Lock()
	s.items = make(map[key]*entry)
	s.mu.Unlock()
}

// Len returns the number of stored records.
func (s *Favorites) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
