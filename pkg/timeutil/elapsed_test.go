package timeutil

import (
	"strings"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestElapsedToday(t *testing.T) {
	text, days, ok := Elapsed("2024-01-01", day(2024, time.January, 1))
	if !ok {
		t.Fatalf("expected ok")
	}
	if text != "Today is the day!" || days != 0 {
		t.Fatalf("unexpected result %q, %d", text, days)
	}
}

func TestElapsedOneYear(t *testing.T) {
	text, days, ok := Elapsed("2023-01-01", day(2024, time.January, 1))
	if !ok {
		t.Fatalf("expected ok")
	}
	if days != 365 {
		t.Fatalf("expected 365 days, got %d", days)
	}
	if !strings.Contains(text, "1 year") || !strings.Contains(text, "0 days") {
		t.Fatalf("unexpected text %q", text)
	}
	if strings.Contains(text, "1 years") {
		t.Fatalf("expected singular year, got %q", text)
	}
}

func TestElapsedFuture(t *testing.T) {
	text, days, ok := Elapsed("2099-01-01", day(2024, time.January, 1))
	if !ok {
		t.Fatalf("expected ok")
	}
	if days >= 0 {
		t.Fatalf("expected negative days, got %d", days)
	}
	if text != "Date 2099-01-01 is in the future." {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestElapsedInvalid(t *testing.T) {
	for _, v := range []string{"not-a-date", "", "2024-13-01", "2024-02-30", "01-01-2024"} {
		text, days, ok := Elapsed(v, time.Now())
		if ok {
			t.Fatalf("%q: expected not ok", v)
		}
		if text != InvalidDate || days != 0 {
			t.Fatalf("%q: unexpected result %q, %d", v, text, days)
		}
	}
}

func TestElapsedMessages(t *testing.T) {
	today := day(2024, time.March, 1)
	tests := []struct {
		date string
		want string
		days int
	}{
		{date: "2024-02-29", want: "1 day ago", days: 1},
		{date: "2024-02-20", want: "10 days ago", days: 10},
		{date: "2023-03-02", want: "1 year, 0 days ago", days: 365},
		{date: "2022-02-28", want: "2 years, 2 days ago", days: 732},
		{date: "2021-03-01", want: "3 years, 1 day ago", days: 1096},
	}
	for _, tt := range tests {
		text, days, ok := Elapsed(tt.date, today)
		if !ok {
			t.Fatalf("%s: expected ok", tt.date)
		}
		if text != tt.want || days != tt.days {
			t.Fatalf("%s: expected %q (%d), got %q (%d)", tt.date, tt.want, tt.days, text, days)
		}
	}
}

func TestElapsedIgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*60*60)
	late := time.Date(2024, time.January, 2, 23, 30, 0, 0, loc)
	_, days, _ := Elapsed("2024-01-01", late)
	if days != 1 {
		t.Fatalf("expected 1 day using the local calendar date, got %d", days)
	}
}

func TestElapsedExtremes(t *testing.T) {
	_, days, ok := Elapsed("0001-01-01", day(9999, time.December, 31))
	if !ok {
		t.Fatalf("expected ok")
	}
	if days <= 0 {
		t.Fatalf("expected positive span, got %d", days)
	}
}
