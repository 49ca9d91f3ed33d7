package merge

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"castmerge/internal/catalog"
	"castmerge/internal/detect"
	"castmerge/internal/logging"
)

// Repository is the slice of the catalog store the engine mutates.
type Repository interface {
	GetMovie(ctx context.Context, id int64) (*catalog.Movie, error)
	UpdateMovie(ctx context.Context, id int64, patch catalog.FieldPatch) error
	AppendMergeLog(ctx context.Context, entry *catalog.MergeLogEntry) error
}

// Options controls a merge invocation.
type Options struct {
	// DryRun computes the effect without touching the repository.
	DryRun bool
	// PreserveAnalytics is recorded on the audit entry for downstream
	// analytics jobs.
	PreserveAnalytics bool
}

// Snapshot is one movie's name fields as they were before the merge wrote
// anything.
type Snapshot struct {
	Director    string              `json:"director,omitempty"`
	Hero        string              `json:"hero,omitempty"`
	Heroine     string              `json:"heroine,omitempty"`
	CastMembers []catalog.CastEntry `json:"cast_members,omitempty"`
}

// Result reports the outcome of one merge invocation. RollbackData is
// present only on executed merges and covers every affected movie,
// captured before the first write.
type Result struct {
	MergedCount      int                    `json:"merged_count"`
	AffectedMovieIDs []int64                `json:"affected_movie_ids"`
	SourceNames      []string               `json:"source_names"`
	RollbackData     map[int64]Snapshot     `json:"rollback_data,omitempty"`
	LogEntry         *catalog.MergeLogEntry `json:"log_entry"`
}

// Engine rewrites a duplicate group's occurrences to a canonical name.
type Engine struct {
	repo   Repository
	logger *slog.Logger
}

// NewEngine builds an Engine. A nil logger falls back to a no-op logger.
func NewEngine(repo Repository, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{repo: repo, logger: logger}
}

// Merge rewrites every occurrence in the group to canonicalName. In dry-run
// mode it reports the planned effect without repository access. In execute
// mode it snapshots every affected movie before writing, rewrites each
// occurrence whose raw value differs from the target, and appends one audit
// entry. Per-movie writes are independent; see the package comment for the
// atomicity contract.
func (e *Engine) Merge(ctx context.Context, group detect.Group, canonicalName string, opts Options) (*Result, error) {
	canonicalName = strings.TrimSpace(canonicalName)
	if canonicalName == "" {
		return nil, Wrap(ErrValidation, "merge", "canonical name is required", nil)
	}
	if len(group.Occurrences) == 0 {
		return nil, Wrap(ErrValidation, "merge", "group has no occurrences", nil)
	}

	affectedIDs := uniqueMovieIDs(group.Occurrences)
	sourceNames := group.DistinctRawValues()

	entry := &catalog.MergeLogEntry{
		MergeID:            uuid.NewString(),
		Timestamp:          time.Now().UTC(),
		SourceNames:        sourceNames,
		TargetName:         canonicalName,
		AffectedMovies:     affectedIDs,
		PreservedAnalytics: opts.PreserveAnalytics,
	}

	result := &Result{
		AffectedMovieIDs: affectedIDs,
		SourceNames:      sourceNames,
		LogEntry:         entry,
	}

	if opts.DryRun {
		e.logger.Info("merge dry run",
			logging.String("target_name", canonicalName),
			logging.Int("occurrences", len(group.Occurrences)),
			logging.Int("affected_movies", len(affectedIDs)))
		return result, nil
	}

	// Snapshot everything before the first write so a partial failure
	// still leaves a usable rollback record.
	movies := make(map[int64]*catalog.Movie, len(affectedIDs))
	rollback := make(map[int64]Snapshot, len(affectedIDs))
	for _, id := range affectedIDs {
		movie, err := e.repo.GetMovie(ctx, id)
		if err != nil {
			return nil, Wrap(ErrFetch, "merge", "snapshot movie", err)
		}
		if movie == nil {
			return nil, Wrap(ErrNotFound, "merge", "movie disappeared before merge", nil)
		}
		movies[id] = movie
		rollback[id] = Snapshot{
			Director:    movie.Director,
			Hero:        movie.Hero,
			Heroine:     movie.Heroine,
			CastMembers: append([]catalog.CastEntry(nil), movie.CastMembers...),
		}
	}
	result.RollbackData = rollback

	merged := 0
	for _, id := range affectedIDs {
		patch, rewritten := buildPatch(movies[id], occurrencesFor(group.Occurrences, id), canonicalName)
		if patch.IsZero() {
			continue
		}
		if err := e.repo.UpdateMovie(ctx, id, patch); err != nil {
			result.MergedCount = merged
			return result, Wrap(ErrWrite, "merge", "update movie", err)
		}
		merged += rewritten
	}
	result.MergedCount = merged

	if err := e.repo.AppendMergeLog(ctx, entry); err != nil {
		// A lost audit record must not undo or fail the merge.
		e.logger.Warn("audit log write failed",
			logging.String("merge_id", entry.MergeID),
			logging.String("target_name", canonicalName),
			logging.Error(err))
	}

	e.logger.Info("merge executed",
		logging.String("merge_id", entry.MergeID),
		logging.String("target_name", canonicalName),
		logging.Int("merged_count", merged),
		logging.Int("affected_movies", len(affectedIDs)))
	return result, nil
}

// buildPatch computes the partial update for one movie and the number of
// occurrences it rewrites. Occurrences already carrying the canonical name
// contribute nothing, which is what makes re-running a merge a no-op.
func buildPatch(movie *catalog.Movie, occurrences []detect.Occurrence, canonicalName string) (catalog.FieldPatch, int) {
	var patch catalog.FieldPatch
	rewritten := 0
	castRenames := make(map[string]struct{})

	for _, occ := range occurrences {
		if occ.RawValue == canonicalName {
			continue
		}
		switch occ.Field {
		case detect.FieldDirector:
			if movie.Director == occ.RawValue {
				patch.Director = &canonicalName
				rewritten++
			}
		case detect.FieldHero:
			if movie.Hero == occ.RawValue {
				patch.Hero = &canonicalName
				rewritten++
			}
		case detect.FieldHeroine:
			if movie.Heroine == occ.RawValue {
				patch.Heroine = &canonicalName
				rewritten++
			}
		case detect.FieldCastMember:
			castRenames[occ.RawValue] = struct{}{}
		}
	}

	if len(castRenames) > 0 {
		updated := make([]catalog.CastEntry, len(movie.CastMembers))
		changed := false
		for i, entry := range movie.CastMembers {
			if _, ok := castRenames[entry.Name()]; ok && !entry.Malformed() {
				updated[i] = entry.WithName(canonicalName)
				changed = true
				rewritten++
				continue
			}
			updated[i] = entry
		}
		if changed {
			patch.CastMembers = updated
		}
	}

	return patch, rewritten
}

func uniqueMovieIDs(occurrences []detect.Occurrence) []int64 {
	seen := make(map[int64]struct{}, len(occurrences))
	var out []int64
	for _, occ := range occurrences {
		if _, ok := seen[occ.MovieID]; ok {
			continue
		}
		seen[occ.MovieID] = struct{}{}
		out = append(out, occ.MovieID)
	}
	return out
}

func occurrencesFor(occurrences []detect.Occurrence, movieID int64) []detect.Occurrence {
	var out []detect.Occurrence
	for _, occ := range occurrences {
		if occ.MovieID == movieID {
			out = append(out, occ)
		}
	}
	return out
}
