package models

import (
	"testing"
	"time"
)

func TestScheduleMaskRoundTrip(t *testing.T) {
	schedules := []Schedule{
		NewSchedule(),
		NewSchedule(Monday),
		NewSchedule(Sunday),
		NewSchedule(Monday, Wednesday, Friday),
		NewSchedule(Saturday, Sunday),
		NewSchedule(Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday),
	}

	for _, s := range schedules {
		got := ScheduleFromMask(s.Mask())
		if got != s {
			t.Errorf("ScheduleFromMask(Mask(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestScheduleFromMaskIgnoresHighBits(t *testing.T) {
	// A mask with garbage above bit 6 must decode to the same set as
	// the clean mask.
	clean := NewSchedule(Monday, Friday)
	dirty := clean.Mask() | 0xFF80

	if got := ScheduleFromMask(dirty); got != clean {
		t.Errorf("ScheduleFromMask(%#x) = %v, want %v", dirty, got, clean)
	}
}

func TestScheduleBitPositions(t *testing.T) {
	// The encoding is fixed: Monday occupies bit 0, Sunday bit 6.
	for d := Monday; d <= Sunday; d++ {
		want := uint16(1) << uint(d)
		if got := NewSchedule(d).Mask(); got != want {
			t.Errorf("NewSchedule(%v).Mask() = %#x, want %#x", d, got, want)
		}
	}
}

func TestWeekdayTimeConversion(t *testing.T) {
	tests := []struct {
		std time.Weekday
		own Weekday
	}{
		{time.Monday, Monday},
		{time.Tuesday, Tuesday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}

	for _, tt := range tests {
		if got := FromTime(tt.std); got != tt.own {
			t.Errorf("FromTime(%v) = %v, want %v", tt.std, got, tt.own)
		}
		if got := tt.own.Time(); got != tt.std {
			t.Errorf("%v.Time() = %v, want %v", tt.own, got, tt.std)
		}
	}
}

func TestWeekdayShort(t *testing.T) {
	tests := []struct {
		wd   Weekday
		want string
	}{
		{Monday, "Mon"},
		{Wednesday, "Wed"},
		{Sunday, "Sun"},
		{Weekday(9), "Weekday(9)"},
		{Weekday(-1), "Weekday(-1)"},
	}

	for _, tt := range tests {
		if got := tt.wd.Short(); got != tt.want {
			t.Errorf("Weekday(%d).Short() = %q, want %q", int(tt.wd), got, tt.want)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{"monday", Monday, false},
		{"Mon", Monday, false},
		{" fri ", Friday, false},
		{"SUNDAY", Sunday, false},
		{"0", Monday, false},
		{"6", Sunday, false},
		{"7", 0, true},
		{"noday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	got, err := ParseSchedule("mon, wed,FRI")
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}
	want := NewSchedule(Monday, Wednesday, Friday)
	if got != want {
		t.Errorf("ParseSchedule = %v, want %v", got, want)
	}

	empty, err := ParseSchedule("")
	if err != nil {
		t.Fatalf("ParseSchedule(\"\") failed: %v", err)
	}
	if !empty.IsEmpty() {
		t.Errorf("ParseSchedule(\"\") = %v, want empty", empty)
	}

	if _, err := ParseSchedule("mon,someday"); err == nil {
		t.Error("ParseSchedule with invalid day expected error")
	}
}

func TestScheduleString(t *testing.T) {
	if got := NewSchedule().String(); got != "none" {
		t.Errorf("empty schedule String() = %q, want %q", got, "none")
	}
	if got := NewSchedule(Monday, Wednesday).String(); got != "Mon,Wed" {
		t.Errorf("String() = %q, want %q", got, "Mon,Wed")
	}
	full := NewSchedule(Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday)
	if got := full.String(); got != "every day" {
		t.Errorf("full schedule String() = %q, want %q", got, "every day")
	}
}
