package registration

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	today := date(2026, time.October, 19)
	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday today", date(2008, time.October, 19), 18},
		{"birthday tomorrow", date(2008, time.October, 20), 17},
		{"birthday yesterday", date(2008, time.October, 18), 18},
		{"later month", date(2008, time.November, 1), 17},
		{"earlier month", date(2008, time.January, 31), 18},
		{"born today", today, 0},
		{"future birth date", date(2030, time.January, 1), -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.birth, today); got != tt.want {
				t.Fatalf("Age(%s) = %d, want %d", tt.birth.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestIsAdultBoundary(t *testing.T) {
	today := date(2026, time.October, 19)
	if !IsAdult(today.AddDate(-AdultAge, 0, 0), today) {
		t.Fatal("exactly 18 years should be adult")
	}
	if IsAdult(today.AddDate(-AdultAge, 0, 1), today) {
		t.Fatal("one day short of 18 should not be adult")
	}
}

func TestIsAdultLeapDay(t *testing.T) {
	birth := date(2008, time.February, 29)
	if IsAdult(birth, date(2026, time.February, 28)) {
		t.Fatal("leap-day birthday is not reached on Feb 28")
	}
	if !IsAdult(birth, date(2026, time.March, 1)) {
		t.Fatal("leap-day birthday is reached on Mar 1")
	}
}

func TestAgeUsesCalendarFields(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	birth := time.Date(2008, time.October, 20, 0, 0, 0, 0, loc)
	today := time.Date(2026, time.October, 19, 23, 30, 0, 0, loc)
	if got := Age(birth, today); got != 17 {
		t.Fatalf("expected 17, got %d", got)
	}
}
