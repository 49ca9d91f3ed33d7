package collab

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"castmerge/internal/catalog"
	"castmerge/internal/logging"
	"castmerge/internal/names"
)

// RelationshipType labels which roles a collaboration pair covers.
type RelationshipType string

const (
	RelActorDirector RelationshipType = "actor_director"
	RelHeroHeroine   RelationshipType = "hero_heroine"
	RelActorMusic    RelationshipType = "actor_music"
)

// MovieSummary is the per-movie detail carried on a collaboration.
type MovieSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Collaboration is an aggregate of how often two canonical entities
// co-occur in a role relationship. Entity1 and Entity2 are stored in sorted
// order, never input order.
type Collaboration struct {
	Entity1          string           `json:"entity1"`
	Entity2          string           `json:"entity2"`
	RelationshipType RelationshipType `json:"relationship_type"`
	MovieCount       int              `json:"movie_count"`
	Movies           []MovieSummary   `json:"movies"`
}

// MovieSource is the slice of the catalog store collaboration reads from.
type MovieSource interface {
	SelectMovies(ctx context.Context, filter catalog.Filter, limit int) ([]*catalog.Movie, error)
}

// Options tunes a collaboration pass.
type Options struct {
	// MinMovies drops pairs seen in fewer movies. Values below 1 are
	// treated as 1.
	MinMovies int
	// MovieLimit bounds the catalog scan when positive.
	MovieLimit int
}

// Builder aggregates collaborations over a movie source.
type Builder struct {
	source MovieSource
	logger *slog.Logger
}

// New builds a Builder. A nil logger falls back to a no-op logger.
func New(source MovieSource, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{source: source, logger: logger}
}

// Build scans the catalog and returns collaborations with at least
// opts.MinMovies co-occurrences, sorted by descending movie count.
func (b *Builder) Build(ctx context.Context, opts Options) ([]Collaboration, error) {
	movies, err := b.source.SelectMovies(ctx, catalog.Filter{}, opts.MovieLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	collaborations := Aggregate(movies, opts.MinMovies)
	b.logger.Info("collaboration aggregation complete",
		logging.Int("movies_scanned", len(movies)),
		logging.Int("pairs", len(collaborations)))
	return collaborations, nil
}

// Aggregate builds collaborations from an in-memory movie batch.
func Aggregate(movies []*catalog.Movie, minMovies int) []Collaboration {
	if minMovies < 1 {
		minMovies = 1
	}

	type rolePair struct {
		first  func(*catalog.Movie) string
		second func(*catalog.Movie) string
		rel    RelationshipType
	}
	rolePairs := []rolePair{
		{func(m *catalog.Movie) string { return m.Hero }, func(m *catalog.Movie) string { return m.Director }, RelActorDirector},
		{func(m *catalog.Movie) string { return m.Heroine }, func(m *catalog.Movie) string { return m.Director }, RelActorDirector},
		{func(m *catalog.Movie) string { return m.Hero }, func(m *catalog.Movie) string { return m.Heroine }, RelHeroHeroine},
		{func(m *catalog.Movie) string { return m.Hero }, func(m *catalog.Movie) string { return m.MusicDirector }, RelActorMusic},
	}

	var order []string
	aggregates := make(map[string]*Collaboration)

	for _, movie := range movies {
		if movie == nil {
			continue
		}
		for _, pair := range rolePairs {
			first := names.Canonicalize(pair.first(movie))
			second := names.Canonicalize(pair.second(movie))
			if first == "" || second == "" || first == second {
				continue
			}
			if second < first {
				first, second = second, first
			}
			key := first + "|" + second + "|" + string(pair.rel)

			aggregate, ok := aggregates[key]
			if !ok {
				aggregate = &Collaboration{
					Entity1:          first,
					Entity2:          second,
					RelationshipType: pair.rel,
				}
				aggregates[key] = aggregate
				order = append(order, key)
			}
			aggregate.MovieCount++
			aggregate.Movies = append(aggregate.Movies, MovieSummary{
				ID:    movie.ID,
				Title: movie.Title,
				Year:  movie.Year,
			})
		}
	}

	out := make([]Collaboration, 0, len(order))
	for _, key := range order {
		aggregate := aggregates[key]
		if aggregate.MovieCount < minMovies {
			continue
		}
		out = append(out, *aggregate)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].MovieCount != out[b].MovieCount {
			return out[a].MovieCount > out[b].MovieCount
		}
		if out[a].Entity1 != out[b].Entity1 {
			return out[a].Entity1 < out[b].Entity1
		}
		return out[a].Entity2 < out[b].Entity2
	})
	return out
}
