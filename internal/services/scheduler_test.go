package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRejectsBadSpec(t *testing.T) {
	e := NewReminderEngine(newFakeStore(), &fakeDispatcher{})
	s := NewScheduler(e, "every two minutes")

	err := s.Start()
	assert.Error(t, err)
}

func TestSchedulerStartStop(t *testing.T) {
	e := NewReminderEngine(newFakeStore(), &fakeDispatcher{})
	s := NewScheduler(e, "*/2 * * * *")

	require.NoError(t, s.Start())
	s.Stop()
}
