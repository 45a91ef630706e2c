package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week, Monday = 0 through Sunday = 6.
// The ordinal doubles as the bit index used by Schedule, so the
// encoding is fixed: bit i of a schedule mask corresponds to Weekday(i).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Short returns the three-letter abbreviation (e.g. "Mon").
func (w Weekday) Short() string {
	if !w.Valid() {
		return w.String()
	}
	return w.String()[:3]
}

// FromTime converts the standard library's Sunday-first numbering.
func FromTime(t time.Weekday) Weekday {
	return Weekday((int(t) + 6) % 7)
}

// Time converts back to the standard library's numbering.
func (w Weekday) Time() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// ParseWeekday accepts full names, three-letter abbreviations, or the
// ordinal 0-6 (Monday first).
func ParseWeekday(s string) (Weekday, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if v == lower || v == lower[:3] {
			return Weekday(i), nil
		}
	}
	if len(v) == 1 && v[0] >= '0' && v[0] <= '6' {
		return Weekday(v[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid weekday: %q", s)
}

// Schedule is a set of weekdays encoded as a bitmask. The zero value is
// the empty schedule.
type Schedule uint16

const scheduleBits Schedule = (1 << 7) - 1

func NewSchedule(days ...Weekday) Schedule {
	var s Schedule
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// ScheduleFromMask decodes a stored mask. Bits beyond the seven valid
// weekday positions are dropped.
func ScheduleFromMask(mask uint16) Schedule {
	return Schedule(mask) & scheduleBits
}

// Mask returns the serialized form. ScheduleFromMask(s.Mask()) == s.
func (s Schedule) Mask() uint16 {
	return uint16(s & scheduleBits)
}

func (s Schedule) Contains(d Weekday) bool {
	return d.Valid() && s&(1<<uint(d)) != 0
}

func (s Schedule) With(d Weekday) Schedule {
	if !d.Valid() {
		return s
	}
	return s | 1<<uint(d)
}

func (s Schedule) Without(d Weekday) Schedule {
	if !d.Valid() {
		return s
	}
	return s &^ (1 << uint(d))
}

func (s Schedule) IsEmpty() bool {
	return s&scheduleBits == 0
}

// Days returns the members in Monday-first order.
func (s Schedule) Days() []Weekday {
	var days []Weekday
	for d := Monday; d <= Sunday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s Schedule) String() string {
	if s.IsEmpty() {
		return "none"
	}
	if s == NewSchedule(Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday) {
		return "every day"
	}
	var parts []string
	for _, d := range s.Days() {
		parts = append(parts, d.Short())
	}
	return strings.Join(parts, ",")
}

// ParseSchedule parses a comma-separated weekday list, e.g. "mon,wed,fri".
// An empty string yields the empty schedule.
func ParseSchedule(s string) (Schedule, error) {
	var sched Schedule
	if strings.TrimSpace(s) == "" {
		return sched, nil
	}
	for _, part := range strings.Split(s, ",") {
		d, err := ParseWeekday(part)
		if err != nil {
			return 0, err
		}
		sched = sched.With(d)
	}
	return sched, nil
}
