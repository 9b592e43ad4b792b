package report

import (
	"testing"
	"time"
)

func TestSelectionRange(t *testing.T) {
	thursday := time.Date(2026, time.February, 19, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sel       Selection
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "week resolves monday to sunday",
			sel:       NewSelection(Week, thursday),
			wantStart: time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.February, 22, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "month resolves calendar month",
			sel:       NewSelection(Month, thursday),
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "custom spans whole days",
			sel: NewCustomSelection(
				time.Date(2026, time.February, 3, 10, 30, 0, 0, time.UTC),
				time.Date(2026, time.February, 5, 8, 0, 0, 0, time.UTC),
			),
			wantStart: time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.February, 5, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.sel.Range()
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("Range() = [%v, %v], want [%v, %v]", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCustomSelectionClampsEnd(t *testing.T) {
	start := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	sel := NewCustomSelection(start, end)
	s, e := sel.Range()
	if e.Before(s) {
		t.Errorf("Range() end %v before start %v", e, s)
	}
}

func TestWeekStep(t *testing.T) {
	sel := NewSelection(Week, time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC))

	sel.Step(1)
	start, _ := sel.Range()
	if !start.Equal(time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("after Step(1) week starts %v", start)
	}

	sel.Step(-1)
	start, _ = sel.Range()
	if !start.Equal(time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("after Step(-1) week starts %v", start)
	}
}

func TestMonthStepRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		cursor time.Time
	}{
		{"mid-month cursor", time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)},
		{"jan 31 cursor survives short february", time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(Month, tt.cursor)
			wantMonth := tt.cursor.Month()

			sel.Step(1)
			sel.Step(-1)

			if sel.Cursor.Month() != wantMonth {
				t.Errorf("cursor month after round trip = %v, want %v", sel.Cursor.Month(), wantMonth)
			}
		})
	}
}

func TestCustomStepIsNoop(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	sel := NewCustomSelection(start, end)
	sel.Step(1)

	s, e := sel.Range()
	if !s.Equal(start) || e.Day() != 10 {
		t.Errorf("Step() changed a custom selection: [%v, %v]", s, e)
	}
}

func TestSelectionLabels(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{
			name: "week label",
			sel:  NewSelection(Week, time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)),
			want: "Săptămâna 16.02.2026 – 22.02.2026",
		},
		{
			name: "month label capitalized",
			sel:  NewSelection(Month, time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)),
			want: "Februarie 2026",
		},
		{
			name: "custom label",
			sel: NewCustomSelection(
				time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
			),
			want: "03.02.2026 – 05.02.2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
