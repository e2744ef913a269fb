package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileProvider_LoadsSport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"soccer": {
			"players": [{"id": 1, "name": "Lionel Messi", "team": "Inter Miami"}],
			"teams": [{"id": 10, "name": "Inter Miami CF"}]
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(path)
	cat, err := p.Catalog(context.Background(), "soccer")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cat.Sport != "soccer" {
		t.Errorf("expected sport 'soccer', got %q", cat.Sport)
	}
	if len(cat.Players) != 1 || cat.Players[0].TeamName != "Inter Miami" {
		t.Errorf("unexpected players: %+v", cat.Players)
	}
	if len(cat.Teams) != 1 || cat.Teams[0].ID != 10 {
		t.Errorf("unexpected teams: %+v", cat.Teams)
	}
}

func TestFileProvider_AllLoadsEverySport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"soccer": {"players": [], "teams": [{"id": 10, "name": "Inter Miami"}]},
		"basketball": {"players": [], "teams": [{"id": 20, "name": "Los Angeles Lakers"}]},
		"hollow": null
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	all, err := NewFileProvider(path).All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("null sports should be dropped, got %d entries: %v", len(all), all)
	}
	for sport, cat := range all {
		if cat.Sport != sport {
			t.Errorf("sport %q not stamped on its catalog, got %q", sport, cat.Sport)
		}
	}
}

func TestFileProvider_UnknownSportIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"soccer": {"players": [], "teams": []}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := NewFileProvider(path).Catalog(context.Background(), "curling")
	if err != nil {
		t.Fatalf("unknown sport should not error, got %v", err)
	}
	if len(cat.Players) != 0 || len(cat.Teams) != 0 {
		t.Errorf("expected empty catalog, got %+v", cat)
	}
}

func TestFileProvider_MissingFileIsUnavailable(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))
	_, err := p.Catalog(context.Background(), "soccer")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestFileProvider_MalformedFileIsUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileProvider(path).Catalog(context.Background(), "soccer")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
