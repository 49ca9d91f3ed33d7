package catalog

import "time"

// Movie is one catalog record. The four name-bearing fields (director, hero,
// heroine, cast members) are the surfaces duplicate detection scans and the
// merge engine rewrites; music_director participates in collaboration
// aggregation only.
type Movie struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Year          int         `json:"year,omitempty"`
	Director      string      `json:"director,omitempty"`
	Hero          string      `json:"hero,omitempty"`
	Heroine       string      `json:"heroine,omitempty"`
	MusicDirector string      `json:"music_director,omitempty"`
	CastMembers   []CastEntry `json:"cast_members,omitempty"`
	CreatedAt     time.Time   `json:"created_at,omitempty"`
	UpdatedAt     time.Time   `json:"updated_at,omitempty"`
}

// Filter narrows a SelectMovies scan. The zero value matches everything.
type Filter struct {
	// TitleLike matches movies whose title contains the substring
	// (case-insensitive).
	TitleLike string
	// Year restricts to an exact release year when non-zero.
	Year int
}

// FieldPatch is a partial update of a movie's name-bearing fields. Nil
// pointers and a nil cast list leave the corresponding column untouched.
type FieldPatch struct {
	Director    *string
	Hero        *string
	Heroine     *string
	CastMembers []CastEntry
}

// IsZero reports whether the patch changes nothing.
func (p FieldPatch) IsZero() bool {
	return p.Director == nil && p.Hero == nil && p.Heroine == nil && p.CastMembers == nil
}

// MergeLogEntry is one append-only audit record describing an executed
// merge. Entries are immutable once written; rollback is a manual operation
// driven by this record plus the rollback snapshot returned to the caller.
type MergeLogEntry struct {
	MergeID            string    `json:"merge_id"`
	Timestamp          time.Time `json:"timestamp"`
	SourceNames        []string  `json:"source_names"`
	TargetName         string    `json:"target_name"`
	AffectedMovies     []int64   `json:"affected_movies"`
	PreservedAnalytics bool      `json:"preserved_analytics"`
}
