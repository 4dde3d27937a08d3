package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/travelingtastebuds/ttb-api/schema"
)

const (
	spotsFile        = "spots.json"
	testimonialsFile = "testimonials.json"
	packagesFile     = "packages.json"
	trustStatsFile   = "trust-stats.json"
)

// Snapshots reads the exported JSON files public pages are built from.
// It never talks to the API and never authenticates.
type Snapshots struct {
	dir string
}

func NewSnapshots(dir string) *Snapshots {
	return &Snapshots{dir: dir}
}

func readSnapshot(dir, name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *Snapshots) Spots() ([]schema.Spot, error) {
	var spots []schema.Spot
	if err := readSnapshot(s.dir, spotsFile, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

func (s *Snapshots) Testimonials() ([]schema.EnrichedTestimonial, error) {
	var testimonials []schema.EnrichedTestimonial
	if err := readSnapshot(s.dir, testimonialsFile, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *Snapshots) Packages() ([]schema.Package, error) {
	var packages []schema.Package
	if err := readSnapshot(s.dir, packagesFile, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *Snapshots) TrustStats() ([]schema.TrustStat, error) {
	var stats []schema.TrustStat
	if err := readSnapshot(s.dir, trustStatsFile, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
