package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"castmerge/internal/enrich/tmdb"
)

func TestSearchPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/person" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "S S Rajamouli" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "key" {
			t.Errorf("api key not forwarded: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":77010,"name":"S.S. Rajamouli","popularity":12.5,"known_for_department":"Directing"}],"total_pages":1,"total_results":1}`))
	}))
	defer server.Close()

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	resp, err := client.SearchPerson(context.Background(), "S S Rajamouli")
	if err != nil {
		t.Fatalf("SearchPerson failed: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected one result, got %d", len(resp.Results))
	}
	result := resp.Results[0]
	if result.ID != 77010 || result.KnownForDepartment != "Directing" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestSearchPersonErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := tmdb.New("bad-key", server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := client.SearchPerson(context.Background(), "Anyone"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSearchPersonRejectsEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.org", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := client.SearchPerson(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := tmdb.New("", "https://example.org", ""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := tmdb.New("key", "", ""); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
