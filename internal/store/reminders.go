// Package store holds the typed operations over the reminders collection.
// The reminder engine never touches the driver directly.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vetbridge/internal/models"
)

// ErrNotFound is returned when no reminder exists for the given id.
var ErrNotFound = errors.New("reminder not found")

const collectionName = "reminders"

// Reminders is the store adapter for reminder records.
type Reminders struct {
	col *mongo.Collection
}

func NewReminders(db *mongo.Database) *Reminders {
	return &Reminders{col: db.Collection(collectionName)}
}

// Create persists a new record with sent=false and returns the assigned id.
func (s *Reminders) Create(ctx context.Context, rec *models.ReminderRecord) (string, error) {
	rec.ID = bson.NewObjectID()
	rec.Sent = false
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("insert reminder: %w", err)
	}
	return rec.ID.Hex(), nil
}

// QueryUnsent returns every record with sent=false, in no particular order.
func (s *Reminders) QueryUnsent(ctx context.Context) ([]models.ReminderRecord, error) {
	cur, err := s.col.Find(ctx, bson.M{"sent": false})
	if err != nil {
		return nil, fmt.Errorf("query unsent reminders: %w", err)
	}
	var recs []models.ReminderRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode unsent reminders: %w", err)
	}
	return recs, nil
}

// QueryRecent returns up to limit most recently created records, newest first.
func (s *Reminders) QueryRecent(ctx context.Context, limit int) ([]models.ReminderRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdInstant", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query recent reminders: %w", err)
	}
	var recs []models.ReminderRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode recent reminders: %w", err)
	}
	return recs, nil
}

// MarkSent transitions a record to sent=true and clears any prior error
// fields. The filter matches only unsent records, so the first writer wins
// and a concurrent second call is a harmless no-op.
func (s *Reminders) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "sent": false},
		bson.M{
			"$set":   bson.M{"sent": true, "sentInstant": sentAt},
			"$unset": bson.M{"lastError": "", "lastAttemptInstant": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("mark reminder %s sent: %w", id, err)
	}
	return nil
}

// MarkFailed records a failed dispatch attempt without changing sent.
func (s *Reminders) MarkFailed(ctx context.Context, id string, dispatchErr error, attemptAt time.Time) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"lastError":          dispatchErr.Error(),
			"lastAttemptInstant": attemptAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("mark reminder %s failed: %w", id, err)
	}
	return nil
}

// GetByID fetches a single record, reporting ErrNotFound for unknown or
// malformed ids.
func (s *Reminders) GetByID(ctx context.Context, id string) (*models.ReminderRecord, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var rec models.ReminderRecord
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reminder %s: %w", id, err)
	}
	return &rec, nil
}
