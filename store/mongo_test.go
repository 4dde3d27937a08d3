package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelingtastebuds/ttb-api/schema"
)

// MongoStoreTestSuite runs against a real MongoDB. Set TEST_MONGODB_URI
// to enable it; it drops and recreates its own database.
type MongoStoreTestSuite struct {
	suite.Suite
	client   *mongo.Client
	store    MongoStore
	database string
}

func (s *MongoStoreTestSuite) SetupSuite() {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		s.T().Skip("TEST_MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	s.Require().NoError(err)

	s.client = client
	s.database = "ttb_store_test"
	s.Require().NoError(client.Database(s.database).Drop(ctx))

	s.store = NewMongoStore(client, s.database)
	s.Require().NoError(s.store.SetupIndexes())
}

func (s *MongoStoreTestSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := s.client.Database(s.database)
	for _, name := range []string{schema.SpotCollection, schema.TestimonialCollection, schema.PackageCollection, schema.SettingsCollection} {
		_, err := db.Collection(name).DeleteMany(ctx, map[string]interface{}{})
		s.Require().NoError(err)
	}
}

func (s *MongoStoreTestSuite) TestSpotLifecycle() {
	created, err := s.store.CreateSpot(schema.Spot{
		Name:     "Joe's",
		TikTokID: "7262868213384400171",
		Lat:      39.8,
		Lng:      -74.9,
		Location: "Hammonton, NJ",
		Tags:     []string{"pizza"},
		Rating:   8.5,
	})
	s.Require().NoError(err)
	s.False(created.ID.IsZero())
	s.False(created.CreatedAt.IsZero())
	s.Equal(created.CreatedAt, created.UpdatedAt)

	got, err := s.store.GetSpot(created.ID)
	s.Require().NoError(err)
	s.Equal("Joe's", got.Name)
	s.Equal([]string{"pizza"}, got.Tags)
	s.Equal(8.5, got.Rating)

	updated, err := s.store.ReplaceSpot(created.ID, schema.Spot{
		Name:     "Joe's Pizza",
		TikTokID: "7262868213384400171",
		Lat:      39.8,
		Lng:      -74.9,
		Location: "Hammonton, NJ",
		Tags:     []string{},
		Rating:   9,
	})
	s.Require().NoError(err)
	s.Equal("Joe's Pizza", updated.Name)
	s.Equal(created.ID, updated.ID)
	s.WithinDuration(created.CreatedAt, updated.CreatedAt, time.Millisecond, "createdAt survives a replace")
	s.True(updated.UpdatedAt.After(updated.CreatedAt))

	s.Require().NoError(s.store.DeleteSpot(created.ID))

	_, err = s.store.GetSpot(created.ID)
	s.Equal(ErrSpotNotFound, err)
	s.Equal(ErrSpotNotFound, s.store.DeleteSpot(created.ID))
}

func (s *MongoStoreTestSuite) TestListSpotsNewestFirst() {
	first, err := s.store.CreateSpot(schema.Spot{Name: "first", TikTokID: "11111", Location: "a"})
	s.Require().NoError(err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.store.CreateSpot(schema.Spot{Name: "second", TikTokID: "22222", Location: "b"})
	s.Require().NoError(err)

	spots, err := s.store.ListSpots()
	s.Require().NoError(err)
	s.Require().Len(spots, 2)
	s.Equal(second.ID, spots[0].ID)
	s.Equal(first.ID, spots[1].ID)
}

func (s *MongoStoreTestSuite) TestReplaceSpotNotFound() {
	_, err := s.store.ReplaceSpot(primitive.NewObjectID(), schema.Spot{Name: "ghost"})
	s.Equal(ErrSpotNotFound, err)
}

func (s *MongoStoreTestSuite) TestSeedAndCount() {
	count, err := s.store.CountSpots()
	s.Require().NoError(err)
	s.EqualValues(0, count)

	inserted, err := s.store.SeedSpots([]schema.Spot{
		{Name: "a", TikTokID: "11111", Location: "x"},
		{Name: "b", TikTokID: "22222", Location: "y"},
	})
	s.Require().NoError(err)
	s.Equal(2, inserted)

	count, err = s.store.CountSpots()
	s.Require().NoError(err)
	s.EqualValues(2, count)
}

func (s *MongoStoreTestSuite) TestListSpotRefsProjection() {
	created, err := s.store.CreateSpot(schema.Spot{
		Name:        "Joe's",
		TikTokID:    "7262868213384400171",
		Location:    "NJ",
		LogoImage:   "/images/joes.png",
		LogoBgColor: "#fff",
		Snippet:     "should not appear in refs",
	})
	s.Require().NoError(err)

	refs, err := s.store.ListSpotRefs()
	s.Require().NoError(err)
	s.Require().Len(refs, 1)
	s.Equal(created.ID, refs[0].ID)
	s.Equal("Joe's", refs[0].Name)
	s.Equal("/images/joes.png", refs[0].LogoImage)
	s.Equal("7262868213384400171", refs[0].TikTokID)
}

func (s *MongoStoreTestSuite) TestTestimonialLifecycle() {
	created, err := s.store.CreateTestimonial(schema.Testimonial{
		Quote:      "So good",
		AuthorName: "Maria",
		Location:   "Philadelphia, PA",
		Rating:     5,
		Featured:   true,
	})
	s.Require().NoError(err)
	s.False(created.ID.IsZero())

	updated, err := s.store.ReplaceTestimonial(created.ID, schema.Testimonial{
		Quote:      "Even better",
		AuthorName: "Maria",
		Location:   "Philadelphia, PA",
		Rating:     4,
	})
	s.Require().NoError(err)
	s.Equal("Even better", updated.Quote)
	s.Equal(4, updated.Rating)

	s.Require().NoError(s.store.DeleteTestimonial(created.ID))
	s.Equal(ErrTestimonialNotFound, s.store.DeleteTestimonial(created.ID))
}

func (s *MongoStoreTestSuite) TestListPackagesSortOrder() {
	_, err := s.store.CreatePackage(schema.Package{Name: "third", Price: "$3", SortOrder: 5, Active: true})
	s.Require().NoError(err)
	_, err = s.store.CreatePackage(schema.Package{Name: "first", Price: "$1", SortOrder: 1, Active: true})
	s.Require().NoError(err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.store.CreatePackage(schema.Package{Name: "second", Price: "$2", SortOrder: 1, Active: true})
	s.Require().NoError(err)

	packages, err := s.store.ListPackages()
	s.Require().NoError(err)
	s.Require().Len(packages, 3)
	s.Equal("first", packages[0].Name)
	s.Equal("second", packages[1].Name)
	s.Equal("third", packages[2].Name)
}

func (s *MongoStoreTestSuite) TestTrustStatsUpsertIsSingleton() {
	_, err := s.store.GetTrustStats()
	s.Equal(ErrSettingNotFound, err)

	s.Require().NoError(s.store.UpsertTrustStats([]schema.TrustStat{
		{Icon: "fas fa-eye", Number: "10M+", Label: "Total Views"},
	}))
	s.Require().NoError(s.store.UpsertTrustStats([]schema.TrustStat{
		{Icon: "fas fa-eye", Number: "12M+", Label: "Total Views"},
	}))

	doc, err := s.store.GetTrustStats()
	s.Require().NoError(err)
	s.Equal(schema.TrustStatsKey, doc.Key)
	s.Require().Len(doc.Stats, 1)
	s.Equal("12M+", doc.Stats[0].Number)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := s.client.Database(s.database).Collection(schema.SettingsCollection).
		CountDocuments(ctx, map[string]interface{}{"key": schema.TrustStatsKey})
	s.Require().NoError(err)
	s.EqualValues(1, n)
}

func TestMongoStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MongoStoreTestSuite))
}
