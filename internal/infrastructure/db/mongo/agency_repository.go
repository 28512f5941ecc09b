package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agencyops/backoffice/internal/core/domain"
)

const collectionAgencies = "agencies"

type AgencyRepository struct {
	col *mongo.Collection
}

func NewAgencyRepository(db *mongo.Database) *AgencyRepository {
	return &AgencyRepository{col: db.Collection(collectionAgencies)}
}

func (r *AgencyRepository) Create(ctx context.Context, a *domain.Agency) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *AgencyRepository) FindByID(ctx context.Context, id string) (*domain.Agency, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Agency
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgencyNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListActive returns all active agencies ordered by creation time.
func (r *AgencyRepository) ListActive(ctx context.Context) ([]*domain.Agency, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var agencies []*domain.Agency
	if err := cur.All(ctx, &agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}

// FindOldestActive returns the active agency with the earliest creation
// time, used as the scope-resolution fallback.
func (r *AgencyRepository) FindOldestActive(ctx context.Context) (*domain.Agency, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var a domain.Agency
	err := r.col.FindOne(ctx, bson.M{"is_active": true}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgencyNotFound
		}
		return nil, err
	}
	return &a, nil
}

// EnsureIndexes creates necessary indexes on the agencies collection.
func (r *AgencyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
