package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vetbridge/internal/models"
	"vetbridge/internal/store"
)

func setup(t *testing.T) *store.Reminders {
	t.Helper()
	_ = godotenv.Load("../../.env")
	uri := os.Getenv("MONGODB_URL")
	if uri == "" {
		t.Skip("MONGODB_URL not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("vetbridge_test")
	t.Cleanup(func() { _ = db.Collection("reminders").Drop(context.Background()) })

	return store.NewReminders(db)
}

func record() *models.ReminderRecord {
	appt := time.Now().UTC().Add(30 * time.Minute).Truncate(time.Millisecond)
	return &models.ReminderRecord{
		AppointmentInstant: &appt,
		AppointmentDate:    appt.Format("2006-01-02"),
		AppointmentTime:    appt.Format("3:04 PM"),
		ClinicianTimezone:  "America/New_York",
		OwnerTimezone:      "America/Los_Angeles",
		OwnerEmail:         "owner@example.com",
		OwnerName:          "Jamie",
		ClinicianName:      "Dr. Reyes",
		ClinicianEmail:     "reyes@example.com",
		JoinLink:           "https://meet.example.com/abc",
	}
}

func TestReminderLifecycle(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	id, err := s.Create(ctx, record())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Sent)
	assert.False(t, got.CreatedAt.IsZero())

	unsent, err := s.QueryUnsent(ctx)
	require.NoError(t, err)
	found := false
	for _, r := range unsent {
		if r.ID.Hex() == id {
			found = true
		}
	}
	assert.True(t, found, "created record missing from unsent query")

	sentAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.MarkSent(ctx, id, sentAt))

	got, err = s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Sent)
	require.NotNil(t, got.SentAt)
	assert.True(t, got.SentAt.Equal(sentAt))
}

func TestMarkSentFirstWriteWins(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	id, err := s.Create(ctx, record())
	require.NoError(t, err)

	t1 := time.Now().UTC().Truncate(time.Millisecond)
	t2 := t1.Add(time.Minute)

	require.NoError(t, s.MarkSent(ctx, id, t1))
	// A concurrent second mark is a no-op, not an error.
	require.NoError(t, s.MarkSent(ctx, id, t2))

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.SentAt)
	assert.True(t, got.SentAt.Equal(t1))
}

func TestMarkSentClearsFailureFields(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	id, err := s.Create(ctx, record())
	require.NoError(t, err)

	attemptAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.MarkFailed(ctx, id, assert.AnError, attemptAt))

	got, err := s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Sent)
	assert.Equal(t, assert.AnError.Error(), got.LastError)
	require.NotNil(t, got.LastAttempt)

	require.NoError(t, s.MarkSent(ctx, id, time.Now().UTC()))

	got, err = s.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Sent)
	assert.Empty(t, got.LastError)
	assert.Nil(t, got.LastAttempt)
}

func TestQueryRecentNewestFirst(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	older := record()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	_, err := s.Create(ctx, older)
	require.NoError(t, err)

	newer := record()
	newerID, err := s.Create(ctx, newer)
	require.NoError(t, err)

	recent, err := s.QueryRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, newerID, recent[0].ID.Hex())
}

func TestGetByIDNotFound(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	_, err := s.GetByID(ctx, bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
