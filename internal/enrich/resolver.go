package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"castmerge/internal/enrich/tmdb"
	"castmerge/internal/logging"
	"castmerge/internal/names"
)

// Identity describes an external match for a canonical name.
type Identity struct {
	PersonID   int64   `json:"person_id"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
	Department string  `json:"department"`
	Found      bool    `json:"found"`
}

// Lookup resolves a canonical name to an external identity. A missing match
// returns Identity{Found: false} with a nil error.
type Lookup interface {
	Resolve(ctx context.Context, canonicalName string) (Identity, error)
}

// Resolver resolves canonical names through a TMDB person search.
type Resolver struct {
	searcher tmdb.Searcher
	logger   *slog.Logger
}

var _ Lookup = (*Resolver)(nil)

// NewResolver builds a Resolver. A nil logger falls back to a no-op logger.
func NewResolver(searcher tmdb.Searcher, logger *slog.Logger) (*Resolver, error) {
	if searcher == nil {
		return nil, errors.New("searcher is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{searcher: searcher, logger: logger}, nil
}

// Resolve searches for the canonical name and returns the most popular
// result whose name canonicalizes to the same form. Near-misses are
// discarded rather than guessed at; a wrong identity is worse than none.
func (r *Resolver) Resolve(ctx context.Context, canonicalName string) (Identity, error) {
	canonical := names.Canonicalize(canonicalName)
	if canonical == "" {
		return Identity{}, errors.New("canonical name must not be empty")
	}

	resp, err := r.searcher.SearchPerson(ctx, canonical)
	if err != nil {
		return Identity{}, fmt.Errorf("person search: %w", err)
	}

	best := Identity{}
	for _, result := range resp.Results {
		if names.Canonicalize(result.Name) != canonical {
			continue
		}
		if !best.Found || result.Popularity > best.Popularity {
			best = Identity{
				PersonID:   result.ID,
				Name:       result.Name,
				Popularity: result.Popularity,
				Department: result.KnownForDepartment,
				Found:      true,
			}
		}
	}

	if !best.Found {
		r.logger.Debug("no external identity match",
			logging.String("canonical_name", canonical),
			logging.Int("results", len(resp.Results)))
		return Identity{}, nil
	}

	r.logger.Debug("external identity resolved",
		logging.String("canonical_name", canonical),
		logging.Int64("person_id", best.PersonID),
		logging.Float64("popularity", best.Popularity),
		logging.String("department", best.Department))
	return best, nil
}
