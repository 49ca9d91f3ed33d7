package detect

import (
	"fmt"
	"strings"

	"castmerge/internal/catalog"
	"castmerge/internal/names"
)

// Field identifies which movie field an occurrence came from.
type Field string

const (
	FieldDirector   Field = "director"
	FieldHero       Field = "hero"
	FieldHeroine    Field = "heroine"
	FieldCastMember Field = "cast_member"
)

// EntityType filters which fields a detection pass scans.
type EntityType string

const (
	EntityDirector EntityType = "director"
	EntityActor    EntityType = "actor"
	EntityAll      EntityType = "all"
)

// ParseEntityType validates a user-supplied entity type string.
func ParseEntityType(value string) (EntityType, error) {
	switch EntityType(strings.ToLower(strings.TrimSpace(value))) {
	case EntityDirector:
		return EntityDirector, nil
	case EntityActor:
		return EntityActor, nil
	case EntityAll, "":
		return EntityAll, nil
	default:
		return "", fmt.Errorf("unknown entity type %q (want director, actor, or all)", value)
	}
}

// Occurrence is one reference to a person: a movie, the field it appeared
// in, and the raw string exactly as stored.
type Occurrence struct {
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title"`
	Field      Field  `json:"field"`
	RawValue   string `json:"raw_value"`
}

// Index buckets occurrences by canonical name, preserving first-seen order
// so detection output is deterministic.
type Index struct {
	order   []string
	buckets map[string][]Occurrence
}

// Collect scans movies and buckets every relevant non-empty name field under
// its canonical form. Cast lists are walked element-wise; entries that carry
// no name (malformed elements) are skipped here and preserved untouched by
// any later rewrite.
func Collect(movies []*catalog.Movie, entityType EntityType) *Index {
	index := &Index{buckets: make(map[string][]Occurrence)}
	for _, movie := range movies {
		if movie == nil {
			continue
		}
		if entityType == EntityDirector || entityType == EntityAll {
			index.add(movie, FieldDirector, movie.Director)
		}
		if entityType == EntityActor || entityType == EntityAll {
			index.add(movie, FieldHero, movie.Hero)
			index.add(movie, FieldHeroine, movie.Heroine)
			for _, entry := range movie.CastMembers {
				index.add(movie, FieldCastMember, entry.Name())
			}
		}
	}
	return index
}

func (ix *Index) add(movie *catalog.Movie, field Field, rawValue string) {
	canonical := names.Canonicalize(rawValue)
	if canonical == "" {
		return
	}
	if _, ok := ix.buckets[canonical]; !ok {
		ix.order = append(ix.order, canonical)
	}
	ix.buckets[canonical] = append(ix.buckets[canonical], Occurrence{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Field:      field,
		RawValue:   rawValue,
	})
}

// Names returns the canonical names in first-seen order.
func (ix *Index) Names() []string {
	return ix.order
}

// Occurrences returns the bucket for a canonical name.
func (ix *Index) Occurrences(canonical string) []Occurrence {
	return ix.buckets[canonical]
}

// Len returns the number of distinct canonical names.
func (ix *Index) Len() int {
	return len(ix.order)
}
