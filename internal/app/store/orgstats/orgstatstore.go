// internal/app/store/orgstats/orgstatstore.go
package orgstatstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection is the MongoDB collection holding organization stats.
const Collection = "organization_stats"

// newestFirst is the sort every read uses.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// Store is the MongoDB-backed Repository.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

func (s *Store) Save(ctx context.Context, stat models.OrganizationStat) (models.OrganizationStat, error) {
	stat.NameCI = text.Fold(stat.Name)
	// BSON dates carry millisecond precision.
	stat.CreatedAt = stat.CreatedAt.UTC().Truncate(time.Millisecond)

	if stat.ID.IsZero() {
		stat.ID = primitive.NewObjectID()
		if _, err := s.c.InsertOne(ctx, stat); err != nil {
			return models.OrganizationStat{}, err
		}
		return stat, nil
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": stat.ID}, stat, opts); err != nil {
		return models.OrganizationStat{}, err
	}
	return stat, nil
}

func (s *Store) Latest(ctx context.Context) (models.OrganizationStat, error) {
	var stat models.OrganizationStat
	err := s.c.FindOne(ctx, bson.M{}, options.FindOne().SetSort(newestFirst)).Decode(&stat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.OrganizationStat{}, ErrNotFound
	}
	if err != nil {
		return models.OrganizationStat{}, err
	}
	return stat, nil
}

func (s *Store) Recent(ctx context.Context, n int) ([]models.OrganizationStat, error) {
	stats := []models.OrganizationStat{}
	if n <= 0 {
		return stats, nil
	}

	opts := options.Find().SetSort(newestFirst).SetLimit(int64(n))
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.c.Database().Client().Ping(ctx, readpref.Primary())
}
