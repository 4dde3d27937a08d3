package api

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelingtastebuds/ttb-api/schema"
	"github.com/travelingtastebuds/ttb-api/store"
)

// fakeStore is an in-memory store.MongoStore used by handler tests.
// Setting one of the err fields makes every operation on that entity
// fail with it.
type fakeStore struct {
	spots        []schema.Spot
	testimonials []schema.Testimonial
	packages     []schema.Package
	trustStats   *schema.TrustStatsSettings

	spotErr        error
	testimonialErr error
	packageErr     error
	settingsErr    error

	seedCalls int
}

var _ store.MongoStore = (*fakeStore)(nil)

func (f *fakeStore) CreateSpot(spot schema.Spot) (*schema.Spot, error) {
	if f.spotErr != nil {
		return nil, f.spotErr
	}
	now := time.Now().UTC()
	spot.ID = primitive.NewObjectID()
	spot.CreatedAt = now
	spot.UpdatedAt = now
	f.spots = append(f.spots, spot)
	return &spot, nil
}

func (f *fakeStore) ListSpots() ([]schema.Spot, error) {
	if f.spotErr != nil {
		return nil, f.spotErr
	}
	return f.spots, nil
}

func (f *fakeStore) ListSpotRefs() ([]schema.SpotRef, error) {
	if f.spotErr != nil {
		return nil, f.spotErr
	}
	refs := make([]schema.SpotRef, len(f.spots))
	for i, s := range f.spots {
		refs[i] = schema.SpotRef{
			ID:          s.ID,
			Name:        s.Name,
			LogoImage:   s.LogoImage,
			LogoBgColor: s.LogoBgColor,
			Location:    s.Location,
			TikTokID:    s.TikTokID,
		}
	}
	return refs, nil
}

func (f *fakeStore) GetSpot(id primitive.ObjectID) (*schema.Spot, error) {
	if f.spotErr != nil {
		return nil, f.spotErr
	}
	for i := range f.spots {
		if f.spots[i].ID == id {
			return &f.spots[i], nil
		}
	}
	return nil, store.ErrSpotNotFound
}

func (f *fakeStore) ReplaceSpot(id primitive.ObjectID, spot schema.Spot) (*schema.Spot, error) {
	if f.spotErr != nil {
		return nil, f.spotErr
	}
	for i := range f.spots {
		if f.spots[i].ID == id {
			spot.ID = id
			spot.CreatedAt = f.spots[i].CreatedAt
			spot.UpdatedAt = time.Now().UTC()
			f.spots[i] = spot
			return &f.spots[i], nil
		}
	}
	return nil, store.ErrSpotNotFound
}

func (f *fakeStore) DeleteSpot(id primitive.ObjectID) error {
	if f.spotErr != nil {
		return f.spotErr
	}
	for i := range f.spots {
		if f.spots[i].ID == id {
			f.spots = append(f.spots[:i], f.spots[i+1:]...)
			return nil
		}
	}
	return store.ErrSpotNotFound
}

func (f *fakeStore) CountSpots() (int64, error) {
	if f.spotErr != nil {
		return 0, f.spotErr
	}
	return int64(len(f.spots)), nil
}

func (f *fakeStore) SeedSpots(spots []schema.Spot) (int, error) {
	if f.spotErr != nil {
		return 0, f.spotErr
	}
	f.seedCalls++
	f.spots = append(f.spots, spots...)
	return len(spots), nil
}

func (f *fakeStore) CreateTestimonial(t schema.Testimonial) (*schema.Testimonial, error) {
	if f.testimonialErr != nil {
		return nil, f.testimonialErr
	}
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	f.testimonials = append(f.testimonials, t)
	return &t, nil
}

func (f *fakeStore) ListTestimonials() ([]schema.Testimonial, error) {
	if f.testimonialErr != nil {
		return nil, f.testimonialErr
	}
	return f.testimonials, nil
}

func (f *fakeStore) ReplaceTestimonial(id primitive.ObjectID, t schema.Testimonial) (*schema.Testimonial, error) {
	if f.testimonialErr != nil {
		return nil, f.testimonialErr
	}
	for i := range f.testimonials {
		if f.testimonials[i].ID == id {
			t.ID = id
			t.CreatedAt = f.testimonials[i].CreatedAt
			t.UpdatedAt = time.Now().UTC()
			f.testimonials[i] = t
			return &f.testimonials[i], nil
		}
	}
	return nil, store.ErrTestimonialNotFound
}

func (f *fakeStore) DeleteTestimonial(id primitive.ObjectID) error {
	if f.testimonialErr != nil {
		return f.testimonialErr
	}
	for i := range f.testimonials {
		if f.testimonials[i].ID == id {
			f.testimonials = append(f.testimonials[:i], f.testimonials[i+1:]...)
			return nil
		}
	}
	return store.ErrTestimonialNotFound
}

func (f *fakeStore) CreatePackage(pkg schema.Package) (*schema.Package, error) {
	if f.packageErr != nil {
		return nil, f.packageErr
	}
	now := time.Now().UTC()
	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	f.packages = append(f.packages, pkg)
	return &pkg, nil
}

func (f *fakeStore) ListPackages() ([]schema.Package, error) {
	if f.packageErr != nil {
		return nil, f.packageErr
	}
	return f.packages, nil
}

func (f *fakeStore) ReplacePackage(id primitive.ObjectID, pkg schema.Package) (*schema.Package, error) {
	if f.packageErr != nil {
		return nil, f.packageErr
	}
	for i := range f.packages {
		if f.packages[i].ID == id {
			pkg.ID = id
			pkg.CreatedAt = f.packages[i].CreatedAt
			pkg.UpdatedAt = time.Now().UTC()
			f.packages[i] = pkg
			return &f.packages[i], nil
		}
	}
	return nil, store.ErrPackageNotFound
}

func (f *fakeStore) DeletePackage(id primitive.ObjectID) error {
	if f.packageErr != nil {
		return f.packageErr
	}
	for i := range f.packages {
		if f.packages[i].ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return store.ErrPackageNotFound
}

func (f *fakeStore) GetTrustStats() (*schema.TrustStatsSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	if f.trustStats == nil {
		return nil, store.ErrSettingNotFound
	}
	return f.trustStats, nil
}

func (f *fakeStore) UpsertTrustStats(stats []schema.TrustStat) error {
	if f.settingsErr != nil {
		return f.settingsErr
	}
	f.trustStats = &schema.TrustStatsSettings{
		Key:       schema.TrustStatsKey,
		Stats:     stats,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

func (f *fakeStore) Ping() error         { return nil }
func (f *fakeStore) SetupIndexes() error { return nil }
func (f *fakeStore) Close() error        { return nil }
