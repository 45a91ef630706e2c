package cli

import (
	"testing"

	"github.com/CaptainSharky/Tracker/internal/models"
)

func TestParseScheduleFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Schedule
		wantErr bool
	}{
		{
			name:  "empty means irregular",
			input: "",
			want:  models.NewSchedule(),
		},
		{
			name:  "daily selects all weekdays",
			input: "daily",
			want: models.NewSchedule(
				models.Monday, models.Tuesday, models.Wednesday, models.Thursday,
				models.Friday, models.Saturday, models.Sunday,
			),
		},
		{
			name:  "comma separated days",
			input: "mon,wed,fri",
			want:  models.NewSchedule(models.Monday, models.Wednesday, models.Friday),
		},
		{
			name:  "mixed case with spaces",
			input: " Tue , SUN ",
			want:  models.NewSchedule(models.Tuesday, models.Sunday),
		},
		{
			name:    "unknown day",
			input:   "mon,noday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheduleFlag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheduleFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseScheduleFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	valid := []string{"#FD4C49", "#000000", "#abcdef"}
	for _, s := range valid {
		if err := ValidateColor(s); err != nil {
			t.Errorf("ValidateColor(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "FD4C49", "#FD4C4", "#FD4C499", "#GGGGGG", "red"}
	for _, s := range invalid {
		if err := ValidateColor(s); err == nil {
			t.Errorf("ValidateColor(%q) = nil, want error", s)
		}
	}
}
