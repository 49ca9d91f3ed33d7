package merge_test

import (
	"context"
	"testing"

	"castmerge/internal/catalog"
	"castmerge/internal/detect"
	"castmerge/internal/merge"
)

func TestBatchIsolatesFailingCandidates(t *testing.T) {
	repo := &fakeRepo{movies: map[int64]*catalog.Movie{
		1: {ID: 1, Title: "Pokiri", Hero: "mahesh babu", Director: "puri jagannadh"},
		2: {ID: 2, Title: "Athadu", Hero: "Mahesh  Babu", Director: "Trivikram"},
	}}
	engine := merge.NewEngine(repo, nil)
	batch := merge.NewBatch(engine, nil)

	candidates := []merge.Candidate{
		{
			Group: detect.Group{Occurrences: []detect.Occurrence{
				{MovieID: 1, Field: detect.FieldHero, RawValue: "mahesh babu"},
			}},
			CanonicalName: "Mahesh Babu",
		},
		{
			// Empty group fails validation and must not stop the batch.
			Group:         detect.Group{},
			CanonicalName: "Broken",
		},
		{
			Group: detect.Group{Occurrences: []detect.Occurrence{
				{MovieID: 1, Field: detect.FieldDirector, RawValue: "puri jagannadh"},
			}},
			CanonicalName: "Puri Jagannadh",
		},
	}

	out := batch.Run(context.Background(), candidates, merge.Options{})
	if out.Total != 3 || out.Merged != 2 || out.Errors != 1 {
		t.Fatalf("unexpected batch totals: %+v", out)
	}
	if len(out.Results) != 3 {
		t.Fatalf("every candidate must be reported: %d", len(out.Results))
	}
	if out.Results[1].Error == "" {
		t.Fatalf("failed candidate must carry its error: %#v", out.Results[1])
	}
	if out.Results[2].Error != "" {
		t.Fatalf("candidate after a failure must still run: %#v", out.Results[2])
	}
	if repo.movies[1].Hero != "Mahesh Babu" || repo.movies[1].Director != "Puri Jagannadh" {
		t.Fatalf("surviving candidates not applied: %#v", repo.movies[1])
	}
}

func TestCandidatesFromGroupsThreshold(t *testing.T) {
	groups := []detect.Group{
		{CanonicalName: "Mahesh Babu", Confidence: 0.8},
		{CanonicalName: "Sunil", Confidence: 0.6},
		{CanonicalName: "Prabhas", Confidence: 0.7},
	}

	candidates := merge.CandidatesFromGroups(groups, 0.7)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].CanonicalName != "Mahesh Babu" || candidates[1].CanonicalName != "Prabhas" {
		t.Fatalf("wrong candidates selected: %#v", candidates)
	}
	for _, candidate := range candidates {
		if candidate.CanonicalName != candidate.Group.CanonicalName {
			t.Fatalf("automated target must be the group canonical name: %#v", candidate)
		}
	}
}
