package merge

import (
	"context"
	"log/slog"

	"castmerge/internal/detect"
	"castmerge/internal/logging"
)

// Candidate pairs a duplicate group with the canonical name chosen for it.
type Candidate struct {
	Group         detect.Group `json:"group"`
	CanonicalName string       `json:"canonical_name"`
}

// CandidatesFromGroups selects groups at or above minConfidence and targets
// each at its own canonical name. This is the automated selection path; a
// human reviewer can instead build candidates with hand-picked targets.
func CandidatesFromGroups(groups []detect.Group, minConfidence float64) []Candidate {
	var out []Candidate
	for _, group := range groups {
		if group.Confidence < minConfidence {
			continue
		}
		out = append(out, Candidate{Group: group, CanonicalName: group.CanonicalName})
	}
	return out
}

// ItemResult records one candidate's outcome within a batch.
type ItemResult struct {
	CanonicalName string  `json:"canonical_name"`
	Result        *Result `json:"result,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// BatchResult aggregates a whole batch run.
type BatchResult struct {
	Total   int          `json:"total"`
	Merged  int          `json:"merged"`
	Errors  int          `json:"errors"`
	Results []ItemResult `json:"results"`
}

// Batch drives the engine over many candidates with per-item error
// isolation: a failing candidate is counted and reported, and the batch
// always continues to the next one.
type Batch struct {
	engine *Engine
	logger *slog.Logger
}

// NewBatch builds a Batch. A nil logger falls back to a no-op logger.
func NewBatch(engine *Engine, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Batch{engine: engine, logger: logger}
}

// Run merges every candidate in order and aggregates the outcomes.
func (b *Batch) Run(ctx context.Context, candidates []Candidate, opts Options) BatchResult {
	batch := BatchResult{Total: len(candidates)}
	for _, candidate := range candidates {
		result, err := b.engine.Merge(ctx, candidate.Group, candidate.CanonicalName, opts)
		if err != nil {
			batch.Errors++
			b.logger.Warn("merge candidate failed",
				logging.String("canonical_name", candidate.CanonicalName),
				logging.Error(err))
			batch.Results = append(batch.Results, ItemResult{
				CanonicalName: candidate.CanonicalName,
				Result:        result,
				Error:         err.Error(),
			})
			continue
		}
		batch.Merged++
		batch.Results = append(batch.Results, ItemResult{
			CanonicalName: candidate.CanonicalName,
			Result:        result,
		})
	}
	return batch
}
