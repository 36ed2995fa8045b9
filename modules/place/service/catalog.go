package service

import (
	"fmt"

	"meetpoint/core/logger"
	"meetpoint/modules/recommendation/entity"

	"github.com/gosimple/slug"
	"github.com/spf13/viper"
)

// Catalog is the fixed set of locations eligible to host a meeting. It is
// loaded once at startup and read-only afterwards.
type Catalog struct {
	locations []entity.CandidateLocation
}

// Locations returns the catalog entries in file order.
func (c *Catalog) Locations() []entity.CandidateLocation {
	return c.locations
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.locations)
}

// LoadCatalog reads the candidate-location catalog from a YAML file. Entries
// without an identifier get one slugified from the display name. Coordinates
// are bounds-checked and identifiers must be unique.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var locations []entity.CandidateLocation
	if err := v.UnmarshalKey("locations", &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	catalog, err := NewCatalog(locations)
	if err != nil {
		return nil, err
	}

	logger.Info("Candidate catalog loaded", "path", path, "locations", catalog.Len())
	return catalog, nil
}

// NewCatalog validates raw entries and builds a catalog.
func NewCatalog(locations []entity.CandidateLocation) (*Catalog, error) {
	seen := map[string]bool{}
	for i := range locations {
		loc := &locations[i]

		if loc.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: name must not be empty", i)
		}
		if loc.ID == "" {
			loc.ID = slug.Make(loc.Name)
		}
		if seen[loc.ID] {
			return nil, fmt.Errorf("catalog entry %q: duplicate identifier", loc.ID)
		}
		seen[loc.ID] = true

		if !loc.Coordinates.InBounds() {
			return nil, fmt.Errorf("catalog entry %q: coordinates out of range", loc.ID)
		}
	}

	return &Catalog{locations: locations}, nil
}
