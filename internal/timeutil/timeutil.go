// Package timeutil converts appointment instants into the wall-clock strings
// that appear in emails. Bad timezone data never blocks an email: conversion
// degrades to a UTC-labelled string instead of returning an error.
package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "3:04 PM"

	// FallbackZone is assumed for legacy records that carry no timezone.
	FallbackZone = "America/New_York"
)

// ZonedDisplay is the wall-clock representation of an instant in one zone.
type ZonedDisplay struct {
	LocalTime        string
	LocalDate        string
	FullDisplay      string
	ZoneAbbreviation string
}

// ToZonedDisplay converts an absolute instant into a zone's wall clock.
// An empty or unrecognised zone falls back to UTC, labelled as such.
func ToZonedDisplay(instant time.Time, timezone string) ZonedDisplay {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			local := instant.In(loc)
			return ZonedDisplay{
				LocalTime:        local.Format(TimeLayout),
				LocalDate:        local.Format(DateLayout),
				FullDisplay:      local.Format(DateLayout + " " + TimeLayout),
				ZoneAbbreviation: local.Format("MST"),
			}
		}
	}
	utc := instant.UTC()
	return ZonedDisplay{
		LocalTime:        utc.Format(TimeLayout),
		LocalDate:        utc.Format(DateLayout),
		FullDisplay:      utc.Format(DateLayout + " " + TimeLayout),
		ZoneAbbreviation: "UTC",
	}
}

// DisplayForRecipient builds the "when" string for one recipient. When both
// the absolute instant and the recipient's zone are known the result is
// zone-correct; otherwise the stored wall-clock fields are echoed verbatim,
// with no zone suffix.
func DisplayForRecipient(instant *time.Time, timezone, fallbackTime, fallbackDate string) string {
	if instant != nil && timezone != "" {
		d := ToZonedDisplay(*instant, timezone)
		return fmt.Sprintf("%s at %s (%s)", d.LocalDate, d.LocalTime, d.ZoneAbbreviation)
	}
	return fmt.Sprintf("%s at %s", fallbackDate, fallbackTime)
}

// ConvertEasternToZone reinterprets a US Eastern wall-clock time in another
// zone, for reschedule emails that show the reader their previous slot.
// It operates on wall-clock strings, so it is only correct when the source
// really was Eastern. An empty or unknown target zone means the process
// zone; an unparsable input is returned unchanged.
func ConvertEasternToZone(clock, date, timezone string) string {
	eastern, err := time.LoadLocation(FallbackZone)
	if err != nil {
		return clock
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, eastern)
	if err != nil {
		return clock
	}
	dest := time.Local
	if timezone != "" {
		if loc, lerr := time.LoadLocation(timezone); lerr == nil {
			dest = loc
		}
	}
	return t.In(dest).Format("03:04 PM")
}

// ResolveInstant determines the authoritative appointment start in UTC.
// The stored instant wins; legacy records derive it from the local
// date/time fields in the clinician's zone, assuming US Eastern when the
// zone is missing or unknown.
func ResolveInstant(instant *time.Time, localDate, localTime, timezone string) (time.Time, error) {
	if instant != nil {
		return instant.UTC(), nil
	}
	if timezone == "" {
		timezone = FallbackZone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc, err = time.LoadLocation(FallbackZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("load fallback zone: %w", err)
		}
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, localDate+" "+localTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse local appointment time %q %q: %w", localDate, localTime, err)
	}
	return t.UTC(), nil
}
