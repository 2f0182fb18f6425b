package services

import (
	"context"
	"sync"
	"time"

	"vetbridge/internal/models"
	"vetbridge/internal/store"
)

// fakeStore is an in-memory ReminderStore for engine tests.
type fakeStore struct {
	mu       sync.Mutex
	recs     map[string]*models.ReminderRecord
	queryErr error
}

func newFakeStore(recs ...*models.ReminderRecord) *fakeStore {
	s := &fakeStore{recs: make(map[string]*models.ReminderRecord)}
	for _, r := range recs {
		s.recs[r.ID.Hex()] = r
	}
	return s
}

func (s *fakeStore) Create(_ context.Context, rec *models.ReminderRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.recs[rec.ID.Hex()] = rec
	return rec.ID.Hex(), nil
}

func (s *fakeStore) QueryUnsent(context.Context) ([]models.ReminderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	var out []models.ReminderRecord
	for _, r := range s.recs {
		if !r.Sent {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeStore) QueryRecent(_ context.Context, limit int) ([]models.ReminderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	var out []models.ReminderRecord
	for _, r := range s.recs {
		if len(out) == limit {
			break
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *fakeStore) MarkSent(_ context.Context, id string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return store.ErrNotFound
	}
	if rec.Sent {
		// First write wins.
		return nil
	}
	rec.Sent = true
	rec.SentAt = &sentAt
	rec.LastError = ""
	rec.LastAttempt = nil
	return nil
}

func (s *fakeStore) MarkFailed(_ context.Context, id string, dispatchErr error, attemptAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.LastError = dispatchErr.Error()
	rec.LastAttempt = &attemptAt
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*models.ReminderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (s *fakeStore) get(id string) *models.ReminderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recs[id]
}

// fakeDispatcher records dispatch attempts and fails for chosen owner emails.
type fakeDispatcher struct {
	mu         sync.Mutex
	dispatched []string
	failFor    map[string]error
}

func (d *fakeDispatcher) DispatchReminder(_ context.Context, rec *models.ReminderRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatched = append(d.dispatched, rec.ID.Hex())
	if d.failFor != nil {
		if err, ok := d.failFor[rec.OwnerEmail]; ok {
			return err
		}
	}
	return nil
}

// fakeMailer records outbound emails and fails for chosen addresses.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []Email
	failFor map[string]error
}

func (m *fakeMailer) Send(_ context.Context, msg Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if m.failFor != nil {
		if err, ok := m.failFor[msg.ToEmail]; ok {
			return err
		}
	}
	return nil
}
