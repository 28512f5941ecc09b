package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

const collectionHosting = "hosting_services"

type HostingRepository struct {
	col *mongo.Collection
}

func NewHostingRepository(db *mongo.Database) *HostingRepository {
	return &HostingRepository{col: db.Collection(collectionHosting)}
}

func (r *HostingRepository) Create(ctx context.Context, h *domain.HostingService) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, h)
	return err
}

func (r *HostingRepository) FindByID(ctx context.Context, sc scope.Context, id string) (*domain.HostingService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{"_id": id})

	var h domain.HostingService
	err := r.col.FindOne(ctx, filter).Decode(&h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHostingNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HostingRepository) List(ctx context.Context, sc scope.Context, f ports.ListHostingFilter) ([]*domain.HostingService, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{})
	if f.ClientID != "" {
		filter["client_id"] = f.ClientID
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "end_date", Value: 1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var services []*domain.HostingService
	if err := cur.All(ctx, &services); err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

// FindExpiringBetween returns hosting services for one agency whose end date
// falls in [from, to].
func (r *HostingRepository) FindExpiringBetween(ctx context.Context, agencyID string, from, to time.Time) ([]*domain.HostingService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"agency_id": agencyID,
		"end_date":  bson.M{"$gte": from, "$lte": to},
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []*domain.HostingService
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// EnsureIndexes creates necessary indexes on the hosting collection.
func (r *HostingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "agency_id", Value: 1}, {Key: "end_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
