package service

import (
	"os"
	"path/filepath"
	"testing"

	"meetpoint/modules/recommendation/entity"
)

func location(id, name string, lat, lng float64) entity.CandidateLocation {
	return entity.CandidateLocation{
		ID:   id,
		Name: name,
		Coordinates: entity.GeoPoint{
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestNewCatalog_SlugifiesMissingIdentifiers(t *testing.T) {
	catalog, err := NewCatalog([]entity.CandidateLocation{
		location("", "Central Library", 37.7793, -122.4157),
		location("dolores", "Dolores Park", 37.7596, -122.4269),
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	got := catalog.Locations()
	if got[0].ID != "central-library" {
		t.Errorf("ID = %q, want slug \"central-library\"", got[0].ID)
	}
	if got[1].ID != "dolores" {
		t.Errorf("ID = %q, want explicit identifier preserved", got[1].ID)
	}
}

func TestNewCatalog_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name      string
		locations []entity.CandidateLocation
	}{
		{
			name:      "empty name",
			locations: []entity.CandidateLocation{location("x", "", 0, 0)},
		},
		{
			name: "duplicate identifiers",
			locations: []entity.CandidateLocation{
				location("same", "First", 1, 1),
				location("same", "Second", 2, 2),
			},
		},
		{
			name: "slug collision with explicit identifier",
			locations: []entity.CandidateLocation{
				location("central-library", "Main Branch", 1, 1),
				location("", "Central Library", 2, 2),
			},
		},
		{
			name:      "latitude out of range",
			locations: []entity.CandidateLocation{location("x", "X", 90.01, 0)},
		},
		{
			name:      "longitude out of range",
			locations: []entity.CandidateLocation{location("x", "X", 0, -180.01)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.locations); err == nil {
				t.Fatal("NewCatalog() error = nil, want validation error")
			}
		})
	}
}

func TestNewCatalog_EmptyCatalogIsValid(t *testing.T) {
	catalog, err := NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
}

func TestLoadCatalog_ReadsYAMLFile(t *testing.T) {
	content := `locations:
  - id: central-library
    name: Central Library
    abbreviation: LIB
    coordinates:
      latitude: 37.7793
      longitude: -122.4157
  - name: Dolores Park
    coordinates:
      latitude: 37.7596
      longitude: -122.4269
`
	path := filepath.Join(t.TempDir(), "locations.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}

	got := catalog.Locations()
	if got[0].ID != "central-library" || got[0].Abbreviation != "LIB" {
		t.Errorf("first entry = %+v, want explicit id and abbreviation", got[0])
	}
	if got[1].ID != "dolores-park" {
		t.Errorf("second entry ID = %q, want slug \"dolores-park\"", got[1].ID)
	}
	if got[1].Coordinates.Latitude != 37.7596 {
		t.Errorf("Latitude = %v, want 37.7596", got[1].Coordinates.Latitude)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadCatalog() error = nil, want read failure")
	}
}
