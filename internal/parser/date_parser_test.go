package parser

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "slash format",
			input: "16/02/2026",
			want:  time.Date(2026, time.February, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "dot format",
			input: "16.02.2026",
			want:  time.Date(2026, time.February, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "invalid day for month",
			input:   "30/02/2026",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "soon",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "01/13/2026",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateEmpty(t *testing.T) {
	got, err := ParseDate("")
	if err != nil || got != nil {
		t.Errorf("ParseDate(\"\") = %v, %v; want nil, nil", got, err)
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2.5", 2.5, false},
		{"2,5", 2.5, false},
		{"150", 150, false},
		{"", 0, false},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDecimal(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDecimal(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimal(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
