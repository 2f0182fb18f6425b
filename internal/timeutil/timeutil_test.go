package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetbridge/internal/timeutil"
)

func utc(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestToZonedDisplay(t *testing.T) {
	instant := utc(t, "2025-06-20T14:00:00Z")

	d := timeutil.ToZonedDisplay(instant, "America/New_York")
	assert.Equal(t, "10:00 AM", d.LocalTime)
	assert.Equal(t, "2025-06-20", d.LocalDate)
	assert.Equal(t, "EDT", d.ZoneAbbreviation)
	assert.Equal(t, "2025-06-20 10:00 AM", d.FullDisplay)

	d = timeutil.ToZonedDisplay(instant, "America/Los_Angeles")
	assert.Equal(t, "7:00 AM", d.LocalTime)
	assert.Equal(t, "PDT", d.ZoneAbbreviation)
}

func TestToZonedDisplayBadZoneFallsBackToUTC(t *testing.T) {
	instant := utc(t, "2025-06-20T14:00:00Z")

	for _, zone := range []string{"", "Not/AZone"} {
		d := timeutil.ToZonedDisplay(instant, zone)
		assert.Equal(t, "UTC", d.ZoneAbbreviation, "zone %q", zone)
		assert.Equal(t, "2:00 PM", d.LocalTime, "zone %q", zone)
		assert.Equal(t, "2025-06-20", d.LocalDate, "zone %q", zone)
	}
}

func TestDisplayForRecipient(t *testing.T) {
	instant := utc(t, "2025-06-20T14:00:00Z")

	got := timeutil.DisplayForRecipient(&instant, "America/New_York", "10:00 AM", "2025-06-20")
	assert.Equal(t, "2025-06-20 at 10:00 AM (EDT)", got)

	got = timeutil.DisplayForRecipient(&instant, "America/Los_Angeles", "10:00 AM", "2025-06-20")
	assert.Equal(t, "2025-06-20 at 7:00 AM (PDT)", got)
}

func TestDisplayForRecipientFallbackIsVerbatim(t *testing.T) {
	// Legacy records without an absolute instant echo their stored fields,
	// with no zone suffix.
	got := timeutil.DisplayForRecipient(nil, "America/New_York", "10:00 AM", "2025-06-20")
	assert.Equal(t, "2025-06-20 at 10:00 AM", got)

	// Same when the zone is missing even though the instant is known.
	instant := utc(t, "2025-06-20T14:00:00Z")
	got = timeutil.DisplayForRecipient(&instant, "", "10:00 AM", "2025-06-20")
	assert.Equal(t, "2025-06-20 at 10:00 AM", got)
}

func TestConvertEasternToZone(t *testing.T) {
	got := timeutil.ConvertEasternToZone("10:00 AM", "2025-06-20", "America/Los_Angeles")
	assert.Equal(t, "07:00 AM", got)

	got = timeutil.ConvertEasternToZone("10:00 AM", "2025-06-20", "America/New_York")
	assert.Equal(t, "10:00 AM", got)

	// Unparsable input comes back unchanged.
	got = timeutil.ConvertEasternToZone("whenever", "2025-06-20", "America/Los_Angeles")
	assert.Equal(t, "whenever", got)
}

func TestResolveInstantPrefersStoredInstant(t *testing.T) {
	instant := utc(t, "2025-06-20T14:00:00Z")

	got, err := timeutil.ResolveInstant(&instant, "1999-01-01", "1:00 AM", "America/Chicago")
	require.NoError(t, err)
	assert.True(t, got.Equal(instant))
}

func TestResolveInstantDerivesFromLocalFields(t *testing.T) {
	got, err := timeutil.ResolveInstant(nil, "2025-06-20", "10:00 AM", "America/New_York")
	require.NoError(t, err)
	assert.True(t, got.Equal(utc(t, "2025-06-20T14:00:00Z")))

	// Missing and unknown zones both mean US Eastern.
	got, err = timeutil.ResolveInstant(nil, "2025-06-20", "10:00 AM", "")
	require.NoError(t, err)
	assert.True(t, got.Equal(utc(t, "2025-06-20T14:00:00Z")))

	got, err = timeutil.ResolveInstant(nil, "2025-06-20", "10:00 AM", "Not/AZone")
	require.NoError(t, err)
	assert.True(t, got.Equal(utc(t, "2025-06-20T14:00:00Z")))
}

func TestResolveInstantRejectsUnparsableFields(t *testing.T) {
	_, err := timeutil.ResolveInstant(nil, "June 20th", "ten o'clock", "America/New_York")
	assert.Error(t, err)
}
