package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestDayBoundaries(t *testing.T) {
	in := date(2026, time.February, 19, 14, 35, 12)

	if got := StartOfDay(in); !got.Equal(date(2026, time.February, 19, 0, 0, 0)) {
		t.Errorf("StartOfDay() = %v", got)
	}
	if got := EndOfDay(in); !got.Equal(date(2026, time.February, 19, 23, 59, 59)) {
		t.Errorf("EndOfDay() = %v", got)
	}
}

func TestWeekBoundariesAnchoredToMonday(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thursday mid-week",
			in:        date(2026, time.February, 19, 10, 0, 0), // Thursday
			wantStart: date(2026, time.February, 16, 0, 0, 0),  // Monday
			wantEnd:   date(2026, time.February, 22, 23, 59, 59),
		},
		{
			name:      "monday maps to itself",
			in:        date(2026, time.February, 16, 0, 0, 0),
			wantStart: date(2026, time.February, 16, 0, 0, 0),
			wantEnd:   date(2026, time.February, 22, 23, 59, 59),
		},
		{
			name:      "sunday belongs to the preceding monday",
			in:        date(2026, time.February, 22, 23, 0, 0),
			wantStart: date(2026, time.February, 16, 0, 0, 0),
			wantEnd:   date(2026, time.February, 22, 23, 59, 59),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.wantStart) {
				t.Errorf("StartOfWeek() = %v, want %v", got, tt.wantStart)
			}
			if got := EndOfWeek(tt.in); !got.Equal(tt.wantEnd) {
				t.Errorf("EndOfWeek() = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	in := date(2026, time.February, 19, 8, 0, 0)

	if got := StartOfMonth(in); !got.Equal(date(2026, time.February, 1, 0, 0, 0)) {
		t.Errorf("StartOfMonth() = %v", got)
	}
	if got := EndOfMonth(in); !got.Equal(date(2026, time.February, 28, 23, 59, 59)) {
		t.Errorf("EndOfMonth() = %v", got)
	}
}

func TestRoundUpToHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "minutes present - advance to next hour",
			in:   date(2026, time.February, 19, 14, 35, 12),
			want: date(2026, time.February, 19, 15, 0, 0),
		},
		{
			name: "exactly on the hour - unchanged",
			in:   date(2026, time.February, 19, 14, 0, 0),
			want: date(2026, time.February, 19, 14, 0, 0),
		},
		{
			name: "seconds only are dropped without advancing",
			in:   date(2026, time.February, 19, 14, 0, 45),
			want: date(2026, time.February, 19, 14, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundUpToHour(tt.in); !got.Equal(tt.want) {
				t.Errorf("RoundUpToHour() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2 ore"},
		{2.5, "2.5 ore"},
		{0, "0 ore"},
		{10.25, "10.2 ore"},
	}

	for _, tt := range tests {
		if got := FormatHours(tt.in); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency("€", 300); got != "€300.00" {
		t.Errorf("FormatCurrency() = %q", got)
	}
	if got := FormatCurrency("€", 1234.5); got != "€1234.50" {
		t.Errorf("FormatCurrency() = %q", got)
	}
}

func TestFormatGapDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Minute, "45m"},
		{time.Hour, "1h 0m"},
		{90 * time.Minute, "1h 30m"},
		{2 * time.Minute, "2m"},
	}

	for _, tt := range tests {
		if got := FormatGapDuration(tt.in); got != tt.want {
			t.Errorf("FormatGapDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMonthYear(t *testing.T) {
	if got := MonthYear(date(2026, time.February, 1, 0, 0, 0)); got != "Februarie 2026" {
		t.Errorf("MonthYear() = %q", got)
	}
}

func TestFormatDateMedium(t *testing.T) {
	if got := FormatDateMedium(date(2026, time.February, 3, 0, 0, 0)); got != "3 feb. 2026" {
		t.Errorf("FormatDateMedium() = %q", got)
	}
}
