package repo

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aniteca/go-anime-backend/internal/domain"
)

func mkAnime(t *testing.T, id int, title string, genres ...string) *domain.Anime {
	t.Helper()
	gs := make([]domain.Genre, len(genres))
	for i, name := range genres {
		gs[i] = domain.NewGenre(name, "", "", "")
	}
	a, err := domain.NewAnime(id, title, "", "", domain.AnimeAttrs{Genres: gs})
	if err != nil {
		t.Fatalf("NewAnime: %v", err)
	}
	return a
}

func mkFav(t *testing.T, animeID int, userID string, rating float64, addedAt time.Time, genres ...string) *domain.Favorite {
	t.Helper()
	f := domain.NewFavorite(animeID, userID, mkAnime(t, animeID, fmt.Sprintf("anime-%d", animeID), genres...), rating, "")
	f.AddedAt = addedAt
	return f
}

func TestSaveGetDelete(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	if _, ok := s.Get(1, "u1"); ok {
		t.Fatalf("Get on empty store should report absent")
	}

	s.Save(mkFav(t, 1, "u1", 7, now))
	got, ok := s.Get(1, "u1")
	if !ok || got.Rating != 7 {
		t.Fatalf("Get after Save = %+v, %v", got, ok)
	}

	// Same anime, different user: distinct key.
	s.Save(mkFav(t, 1, "u2", 3, now))
	if s.Len() != 2 {
		t.Fatalf("Len = %d; want 2", s.Len())
	}

	if !s.Delete(1, "u1") {
		t.Fatalf("Delete existing should return true")
	}
	if s.Delete(1, "u1") {
		t.Fatalf("Delete absent should return false, not error")
	}
	if _, ok := s.Get(1, "u1"); ok {
		t.Fatalf("record still present after Delete")
	}
}

func TestSave_IsUpsert(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	s.Save(mkFav(t, 1, "u1", 2, now))
	s.Save(mkFav(t, 1, "u1", 9, now))

	got, _ := s.Get(1, "u1")
	if got.Rating != 9 {
		t.Fatalf("Save should overwrite in place, rating = %v", got.Rating)
	}
	if s.Len() != 1 {
		t.Fatalf("upsert must not duplicate, Len = %d", s.Len())
	}
}

func TestUpdate_RequiresExistingKey(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	_, err := s.Update(1, "u1", func(f *domain.Favorite) { f.SetRating(5) })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update on absent key err = %v; want ErrNotFound", err)
	}

	s.Save(mkFav(t, 1, "u1", 5, now))
	updated, err := s.Update(1, "u1", func(f *domain.Favorite) { f.SetRating(8) })
	if err != nil {
		t.Fatalf("Update existing: %v", err)
	}
	if updated.Rating != 8 {
		t.Fatalf("returned rating = %v; want 8", updated.Rating)
	}
	got, _ := s.Get(1, "u1")
	if got.Rating != 8 {
		t.Fatalf("rating after Update = %v; want 8", got.Rating)
	}
}

func TestGet_ReturnsDetachedCopy(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()
	s.Save(mkFav(t, 1, "u1", 5, now))

	got, _ := s.Get(1, "u1")
	got.SetRating(9)
	got.SetComment("scribbled on the copy")

	stored, _ := s.Get(1, "u1")
	if stored.Rating != 5 || stored.Comment != "" {
		t.Fatalf("mutating a returned record leaked into the store: %+v", stored)
	}

	// The same holds for records handed out by ListByUser.
	list := s.ListByUser("u1")
	list[0].SetRating(1)
	stored, _ = s.Get(1, "u1")
	if stored.Rating != 5 {
		t.Fatalf("mutating a listed record leaked into the store: %v", stored.Rating)
	}
}

func TestConcurrentUpdatesAndReads(t *testing.T) {
	s := NewFavorites()
	s.Save(mkFav(t, 1, "u1", 0, time.Now().UTC()))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rating := float64(n%10 + 1)
				if _, err := s.Update(1, "u1", func(f *domain.Favorite) {
					f.SetRating(rating)
					f.SetComment("pass")
				}); err != nil {
					t.Errorf("Update: %v", err)
					return
				}
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if f, ok := s.Get(1, "u1"); ok {
					_ = f.Rating
					_ = f.Comment
				}
				for _, f := range s.ListByUser("u1") {
					_ = f.Rating
				}
			}
		}()
	}
	wg.Wait()

	got, _ := s.Get(1, "u1")
	if got.Rating < 1 || got.Rating > 10 || got.Comment != "pass" {
		t.Fatalf("final record torn: %+v", got)
	}
}

func TestListByUser_OrderedByAddedAtDescending(t *testing.T) {
	s := NewFavorites()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Save(mkFav(t, 1, "u1", 0, base))
	s.Save(mkFav(t, 2, "u1", 0, base.Add(2*time.Hour)))
	s.Save(mkFav(t, 3, "u1", 0, base.Add(time.Hour)))
	s.Save(mkFav(t, 4, "u2", 0, base.Add(3*time.Hour))) // other user

	got := s.ListByUser("u1")
	want := []int{2, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].AnimeID != id {
			t.Fatalf("order[%d] = %d; want %d (full: %v)", i, got[i].AnimeID, id, ids(got))
		}
	}
}

func TestListByUser_TiesKeepInsertionOrder(t *testing.T) {
	s := NewFavorites()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, id := range []int{10, 11, 12} {
		s.Save(mkFav(t, id, "u1", 0, at))
	}

	got := ids(s.ListByUser("u1"))
	for i, id := range []int{10, 11, 12} {
		if got[i] != id {
			t.Fatalf("tie order = %v; want [10 11 12]", got)
		}
	}
}

func TestListByAnime(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	s.Save(mkFav(t, 1, "u1", 0, now))
	s.Save(mkFav(t, 1, "u2", 0, now))
	s.Save(mkFav(t, 2, "u1", 0, now))

	if got := s.ListByAnime(1); len(got) != 2 {
		t.Fatalf("ListByAnime(1) len = %d; want 2", len(got))
	}
	if got := s.ListByAnime(99); len(got) != 0 {
		t.Fatalf("ListByAnime(99) len = %d; want 0", len(got))
	}
}

func TestUserStats_AverageIncludesZeroRatings(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	// Ratings [0, 0, 8] -> store-level average 8/3 = 2.67.
	s.Save(mkFav(t, 1, "u1", 0, now))
	s.Save(mkFav(t, 2, "u1", 0, now.Add(time.Second)))
	s.Save(mkFav(t, 3, "u1", 8, now.Add(2*time.Second)))

	st := s.UserStats("u1")
	if st.Total != 3 {
		t.Fatalf("Total = %d; want 3", st.Total)
	}
	if st.AverageRating != 2.67 {
		t.Fatalf("AverageRating = %v; want 2.67 (zeros included)", st.AverageRating)
	}
}

func TestUserStats_EmptyUser(t *testing.T) {
	s := NewFavorites()
	st := s.UserStats("nobody")
	if st.Total != 0 || st.AverageRating != 0 || len(st.TopGenres) != 0 {
		t.Fatalf("empty stats = %+v", st)
	}
}

func TestUserStats_TopGenres(t *testing.T) {
	s := NewFavorites()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.Save(mkFav(t, 1, "u1", 0, base, "Action", "Drama"))
	s.Save(mkFav(t, 2, "u1", 0, base.Add(1*time.Second), "Action", "Comedy"))
	s.Save(mkFav(t, 3, "u1", 0, base.Add(2*time.Second), "Action", "Drama", "Romance"))
	s.Save(mkFav(t, 4, "u1", 0, base.Add(3*time.Second), "Sports", "Mystery", "Horror"))

	got := s.UserStats("u1").TopGenres
	if len(got) != 5 {
		t.Fatalf("TopGenres len = %d; want 5", len(got))
	}
	if got[0] != "Action" || got[1] != "Drama" {
		t.Fatalf("TopGenres = %v; want Action, Drama leading", got)
	}
	// Comedy and Romance both count 1; Comedy was encountered first. The
	// counting iterates newest-first, so Sports/Mystery/Horror come before
	// them only if encountered earlier in that order.
	if got[2] != "Sports" || got[3] != "Mystery" || got[4] != "Horror" {
		t.Fatalf("tie-break should keep first-encountered order, got %v", got)
	}
}

func TestConcurrentSaves_AreSafe(t *testing.T) {
	s := NewFavorites()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Save(mkFav(t, id+1, "u1", 5, now))
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len after concurrent saves = %d; want 50", s.Len())
	}
}

func ids(favs []*domain.Favorite) []int {
	out := make([]int, len(favs))
	for i, f := range favs {
		out[i] = f.AnimeID
	}
	return out
}
