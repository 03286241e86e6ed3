// Package trip contains trip-related use cases.
package trip

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDays(t *testing.T) {
	tripID := uuid.New()

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantDays  int
		wantDates []time.Time
	}{
		{
			name:     "single day trip",
			start:    date(2026, time.July, 4),
			end:      date(2026, time.July, 4),
			wantDays: 1,
		},
		{
			name:     "one week",
			start:    date(2026, time.June, 1),
			end:      date(2026, time.June, 7),
			wantDays: 7,
		},
		{
			name:     "crosses a month boundary",
			start:    date(2026, time.January, 30),
			end:      date(2026, time.February, 2),
			wantDays: 4,
			wantDates: []time.Time{
				date(2026, time.January, 30),
				date(2026, time.January, 31),
				date(2026, time.February, 1),
				date(2026, time.February, 2),
			},
		},
		{
			name:     "crosses a leap day",
			start:    date(2028, time.February, 27),
			end:      date(2028, time.March, 1),
			wantDays: 4,
			wantDates: []time.Time{
				date(2028, time.February, 27),
				date(2028, time.February, 28),
				date(2028, time.February, 29),
				date(2028, time.March, 1),
			},
		},
		{
			name:     "non leap february",
			start:    date(2027, time.February, 27),
			end:      date(2027, time.March, 1),
			wantDays: 3,
			wantDates: []time.Time{
				date(2027, time.February, 27),
				date(2027, time.February, 28),
				date(2027, time.March, 1),
			},
		},
		{
			name:     "crosses a year boundary",
			start:    date(2026, time.December, 30),
			end:      date(2027, time.January, 2),
			wantDays: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := GenerateDays(tripID, tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(days) != tt.wantDays {
				t.Fatalf("expected %d days, got %d", tt.wantDays, len(days))
			}

			for i, day := range days {
				if day.DayNumber != i+1 {
					t.Errorf("day %d: expected number %d, got %d", i, i+1, day.DayNumber)
				}
				if day.TripID != tripID {
					t.Errorf("day %d: expected trip id %s, got %s", i, tripID, day.TripID)
				}
				if tt.wantDates != nil && !day.Date.Equal(tt.wantDates[i]) {
					t.Errorf("day %d: expected date %s, got %s", i, tt.wantDates[i], day.Date)
				}
			}

			// First and last days must match the range ends.
			if !days[0].Date.Equal(time.Date(tt.start.Year(), tt.start.Month(), tt.start.Day(), 0, 0, 0, 0, time.UTC)) {
				t.Errorf("first day should be the start date, got %s", days[0].Date)
			}
			last := days[len(days)-1]
			if !last.Date.Equal(time.Date(tt.end.Year(), tt.end.Month(), tt.end.Day(), 0, 0, 0, 0, time.UTC)) {
				t.Errorf("last day should be the end date, got %s", last.Date)
			}
		})
	}
}

func TestGenerateDays_InvalidRange(t *testing.T) {
	_, err := GenerateDays(uuid.New(), date(2026, time.June, 10), date(2026, time.June, 9))
	if err == nil {
		t.Fatal("expected error for end before start")
	}
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestGenerateDays_IgnoresTimeAndZone(t *testing.T) {
	tripID := uuid.New()
	zone := time.FixedZone("UTC+13", 13*60*60)

	// Late-evening timestamps in a far-ahead zone still name the same
	// calendar days.
	start := time.Date(2026, time.March, 1, 23, 30, 0, 0, zone)
	end := time.Date(2026, time.March, 3, 1, 15, 0, 0, zone)

	days, err := GenerateDays(tripID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if !days[0].Date.Equal(date(2026, time.March, 1)) {
		t.Errorf("expected first day 2026-03-01, got %s", days[0].Date)
	}
}
