package detect

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"castmerge/internal/catalog"
	"castmerge/internal/enrich"
	"castmerge/internal/logging"
	"castmerge/internal/names"
)

const (
	baseConfidence    = 0.5
	perVariantStep    = 0.1
	confidenceCap     = 0.9
	enrichedBonus     = 0.05
	enrichedCap       = 0.95
	defaultMovieLimit = 500
	defaultMaxResults = 50
)

// Group is a cluster of occurrences believed to denote one real person.
type Group struct {
	CanonicalName string           `json:"canonical_name"`
	Occurrences   []Occurrence     `json:"occurrences"`
	Confidence    float64          `json:"confidence"`
	Identity      *enrich.Identity `json:"identity,omitempty"`
}

// DistinctRawValues returns the unique raw spellings in the group, in
// first-seen order. Raw strings are compared verbatim, so spellings that
// differ only in whitespace count separately.
func (g Group) DistinctRawValues() []string {
	seen := make(map[string]struct{}, len(g.Occurrences))
	var out []string
	for _, occ := range g.Occurrences {
		if _, ok := seen[occ.RawValue]; ok {
			continue
		}
		seen[occ.RawValue] = struct{}{}
		out = append(out, occ.RawValue)
	}
	return out
}

// MovieSource is the slice of the catalog store detection reads from.
type MovieSource interface {
	SelectMovies(ctx context.Context, filter catalog.Filter, limit int) ([]*catalog.Movie, error)
}

// Options tunes a detection pass. Zero values fall back to defaults.
type Options struct {
	EntityType EntityType
	MovieLimit int
	MaxResults int
}

func (o Options) withDefaults() Options {
	if o.EntityType == "" {
		o.EntityType = EntityAll
	}
	if o.MovieLimit <= 0 {
		o.MovieLimit = defaultMovieLimit
	}
	if o.MaxResults <= 0 {
		o.MaxResults = defaultMaxResults
	}
	return o
}

// Detector clusters duplicate name references over a movie source.
type Detector struct {
	source   MovieSource
	resolver enrich.Lookup
	logger   *slog.Logger
}

// New builds a Detector. The resolver is optional; pass nil to skip
// external identity enrichment. A nil logger falls back to a no-op logger.
func New(source MovieSource, resolver enrich.Lookup, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Detector{source: source, resolver: resolver, logger: logger}
}

// FindDuplicates runs one detection pass and returns duplicate groups
// sorted by descending confidence, truncated to opts.MaxResults.
func (d *Detector) FindDuplicates(ctx context.Context, opts Options) ([]Group, error) {
	opts = opts.withDefaults()

	movies, err := d.source.SelectMovies(ctx, catalog.Filter{}, opts.MovieLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	index := Collect(movies, opts.EntityType)
	d.logger.Debug("reference index built",
		logging.Int("movies", len(movies)),
		logging.Int("canonical_names", index.Len()),
		logging.String("entity_type", string(opts.EntityType)))

	groups := cluster(index)

	for i := range groups {
		d.enrichGroup(ctx, &groups[i])
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Confidence != groups[b].Confidence {
			return groups[a].Confidence > groups[b].Confidence
		}
		return groups[a].CanonicalName < groups[b].CanonicalName
	})
	if len(groups) > opts.MaxResults {
		groups = groups[:opts.MaxResults]
	}

	d.logger.Info("duplicate detection complete",
		logging.Int("movies_scanned", len(movies)),
		logging.Int("groups", len(groups)),
		logging.String("entity_type", string(opts.EntityType)))
	return groups, nil
}

// cluster merges canonical buckets linked through one level of name
// variations and emits groups with more than one distinct raw spelling.
func cluster(index *Index) []Group {
	visited := make(map[string]struct{}, index.Len())
	var groups []Group

	for _, canonical := range index.Names() {
		if _, done := visited[canonical]; done {
			continue
		}
		visited[canonical] = struct{}{}

		occurrences := append([]Occurrence(nil), index.Occurrences(canonical)...)
		for _, variation := range names.Variations(canonical) {
			variantCanonical := names.Canonicalize(variation)
			if variantCanonical == canonical {
				continue
			}
			if _, done := visited[variantCanonical]; done {
				continue
			}
			absorbed := index.Occurrences(variantCanonical)
			if len(absorbed) == 0 {
				continue
			}
			occurrences = append(occurrences, absorbed...)
			visited[variantCanonical] = struct{}{}
		}

		group := Group{CanonicalName: canonical, Occurrences: occurrences}
		distinct := len(group.DistinctRawValues())
		if distinct <= 1 {
			continue
		}
		group.Confidence = confidenceFor(distinct)
		groups = append(groups, group)
	}
	return groups
}

func confidenceFor(distinctRawCount int) float64 {
	confidence := baseConfidence + perVariantStep*float64(distinctRawCount)
	return min(confidence, confidenceCap)
}

// enrichGroup blends external identity into a group when a resolver is
// configured. Lookup failures are logged and ignored; enrichment never
// blocks detection.
func (d *Detector) enrichGroup(ctx context.Context, group *Group) {
	if d.resolver == nil {
		return
	}
	identity, err := d.resolver.Resolve(ctx, group.CanonicalName)
	if err != nil {
		d.logger.Warn("identity enrichment failed",
			logging.String("canonical_name", group.CanonicalName),
			logging.Error(err))
		return
	}
	if !identity.Found {
		return
	}
	group.Identity = &identity
	group.Confidence = min(group.Confidence+enrichedBonus, enrichedCap)
}
