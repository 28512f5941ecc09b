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

const collectionReminders = "reminders"

type ReminderRepository struct {
	col *mongo.Collection
}

func NewReminderRepository(db *mongo.Database) *ReminderRepository {
	return &ReminderRepository{col: db.Collection(collectionReminders)}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *domain.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, rem)
	return err
}

func (r *ReminderRepository) FindByID(ctx context.Context, sc scope.Context, id string) (*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{"_id": id})

	var rem domain.Reminder
	err := r.col.FindOne(ctx, filter).Decode(&rem)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}
	return &rem, nil
}

func (r *ReminderRepository) List(ctx context.Context, sc scope.Context, f ports.ListRemindersFilter) ([]*domain.Reminder, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{})
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Completed != nil {
		filter["is_completed"] = *f.Completed
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "due_date", Value: 1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var reminders []*domain.Reminder
	if err := cur.All(ctx, &reminders); err != nil {
		return nil, 0, err
	}
	return reminders, total, nil
}

// FindPending returns reminders for one agency that are not completed and
// still have notification status "pending".
func (r *ReminderRepository) FindPending(ctx context.Context, agencyID string) ([]*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"agency_id":           agencyID,
		"is_completed":        false,
		"notification_status": domain.ReminderNotificationPending,
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reminders []*domain.Reminder
	if err := cur.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderRepository) MarkCompleted(ctx context.Context, sc scope.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{"_id": id})
	update := bson.M{"$set": bson.M{
		"is_completed": true,
		"completed_at": at,
		"updated_at":   at,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) Delete(ctx context.Context, sc scope.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ApplyScope(sc, bson.M{"_id": id})
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the reminders collection.
func (r *ReminderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "agency_id", Value: 1}, {Key: "due_date", Value: 1}}},
		{Keys: bson.D{{Key: "agency_id", Value: 1}, {Key: "is_completed", Value: 1}, {Key: "notification_status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
