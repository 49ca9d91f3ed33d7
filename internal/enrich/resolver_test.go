package enrich_test

import (
	"context"
	"errors"
	"testing"

	"castmerge/internal/enrich"
	"castmerge/internal/enrich/tmdb"
)

type fakeSearcher struct {
	response *tmdb.Response
	err      error
	queries  []string
}

func (f *fakeSearcher) SearchPerson(ctx context.Context, query string) (*tmdb.Response, error) {
	f.queries = append(f.queries, query)
	return f.response, f.err
}

func TestResolvePicksMostPopularExactMatch(t *testing.T) {
	searcher := &fakeSearcher{response: &tmdb.Response{Results: []tmdb.Result{
		{ID: 1, Name: "S S Rajamouli", Popularity: 2.0, KnownForDepartment: "Directing"},
		{ID: 2, Name: "S.S. Rajamouli", Popularity: 12.5, KnownForDepartment: "Directing"},
		{ID: 3, Name: "Rajamouli Somebody", Popularity: 99.0},
	}}}
	resolver, err := enrich.NewResolver(searcher, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	identity, err := resolver.Resolve(context.Background(), "S S Rajamouli")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !identity.Found {
		t.Fatal("expected a match")
	}
	// "S.S. Rajamouli" canonicalizes to the query; the unrelated but more
	// popular result must not win.
	if identity.PersonID != 2 {
		t.Fatalf("expected person 2, got %d", identity.PersonID)
	}
	if identity.Department != "Directing" {
		t.Fatalf("unexpected department %q", identity.Department)
	}
}

func TestResolveNoMatchIsNotAnError(t *testing.T) {
	searcher := &fakeSearcher{response: &tmdb.Response{Results: []tmdb.Result{
		{ID: 9, Name: "Someone Else", Popularity: 50},
	}}}
	resolver, err := enrich.NewResolver(searcher, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	identity, err := resolver.Resolve(context.Background(), "Mahesh Babu")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if identity.Found {
		t.Fatalf("expected no match, got %#v", identity)
	}
}

func TestResolvePropagatesSearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("boom")}
	resolver, err := enrich.NewResolver(searcher, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), "Mahesh Babu"); err == nil {
		t.Fatal("expected error from failing searcher")
	}
}

func TestResolveCanonicalizesQuery(t *testing.T) {
	searcher := &fakeSearcher{response: &tmdb.Response{}}
	resolver, err := enrich.NewResolver(searcher, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), "  s.s. rajamouli "); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != "S S Rajamouli" {
		t.Fatalf("query not canonicalized: %v", searcher.queries)
	}
}
