package testsupport

import (
	"context"
	"testing"

	"castmerge/internal/catalog"
	"castmerge/internal/config"
)

// MustOpenStore opens a catalog store for the test config and closes it when
// the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("open catalog store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close catalog store: %v", err)
		}
	})
	return store
}

// SeedMovies inserts the supplied movies and returns the stored records with
// assigned ids, in insertion order.
func SeedMovies(t testing.TB, store *catalog.Store, movies ...*catalog.Movie) []*catalog.Movie {
	t.Helper()

	ctx := context.Background()
	stored := make([]*catalog.Movie, 0, len(movies))
	for _, movie := range movies {
		inserted, err := store.Insert(ctx, movie)
		if err != nil {
			t.Fatalf("seed movie %q: %v", movie.Title, err)
		}
		stored = append(stored, inserted)
	}
	return stored
}
