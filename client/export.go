package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ExportAll mirrors the live API into static JSON snapshots under dir,
// one file per resource. A failing resource is reported but does not
// stop the others from being written.
func (c *Client) ExportAll(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var errs []error

	write := func(name string, data interface{}, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		log.WithField("prefix", "export").WithField("file", name).Info("snapshot written")
	}

	spots, err := c.Spots(ctx, true)
	write(spotsFile, spots, err)

	testimonials, err := c.Testimonials(ctx, true)
	write(testimonialsFile, testimonials, err)

	packages, err := c.Packages(ctx, true)
	write(packagesFile, packages, err)

	stats, err := c.TrustStats(ctx, true)
	write(trustStatsFile, stats, err)

	return errors.Join(errs...)
}
