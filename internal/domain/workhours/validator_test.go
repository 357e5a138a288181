package workhours

import (
	"errors"
	"testing"
	"time"
)

func entry(start, end string) Entry {
	return Entry{
		UserID:    "u1",
		Date:      time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

func TestValidateInterval(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"valid", "09:00", "17:00", nil},
		{"one minute", "09:00", "09:01", nil},
		{"zero length", "09:00", "09:00", ErrInvalidInterval},
		{"reversed", "17:00", "09:00", ErrInvalidInterval},
		{"bad start", "9h00", "17:00", ErrInvalidTimeFormat},
		{"bad end", "09:00", "25:00", ErrInvalidTimeFormat},
		{"empty", "", "", ErrInvalidTimeFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateInterval(c.start, c.end)
			if !errors.Is(err, c.wantErr) && err != c.wantErr {
				t.Errorf("ValidateInterval(%q, %q) = %v, want %v", c.start, c.end, err, c.wantErr)
			}
		})
	}
}

func TestValidateDayEntries_NoOverlap(t *testing.T) {
	entries := []Entry{
		entry("09:00", "12:00"),
		entry("13:00", "17:00"),
	}
	if err := ValidateDayEntries(entries); err != nil {
		t.Errorf("ValidateDayEntries(disjoint) = %v, want nil", err)
	}
}

func TestValidateDayEntries_BackToBack(t *testing.T) {
	// Closed-open intervals: an entry ending exactly when another starts
	// does not conflict.
	entries := []Entry{
		entry("09:00", "10:00"),
		entry("10:00", "11:00"),
	}
	if err := ValidateDayEntries(entries); err != nil {
		t.Errorf("ValidateDayEntries(back-to-back) = %v, want nil", err)
	}
}

func TestValidateDayEntries_OneMinuteOverlap(t *testing.T) {
	entries := []Entry{
		entry("09:00", "10:01"),
		entry("10:00", "11:00"),
	}
	if err := ValidateDayEntries(entries); !errors.Is(err, ErrOverlapConflict) {
		t.Errorf("ValidateDayEntries(overlapping) = %v, want ErrOverlapConflict", err)
	}
}

func TestValidateDayEntries_Contained(t *testing.T) {
	entries := []Entry{
		entry("09:00", "17:00"),
		entry("10:00", "11:00"),
	}
	if err := ValidateDayEntries(entries); !errors.Is(err, ErrOverlapConflict) {
		t.Errorf("ValidateDayEntries(contained) = %v, want ErrOverlapConflict", err)
	}
}

func TestValidateDayEntries_Symmetric(t *testing.T) {
	a := entry("09:00", "10:30")
	b := entry("10:00", "11:00")
	errAB := ValidateDayEntries([]Entry{a, b})
	errBA := ValidateDayEntries([]Entry{b, a})
	if (errAB == nil) != (errBA == nil) {
		t.Errorf("overlap detection is not symmetric: %v vs %v", errAB, errBA)
	}
}

func TestValidateDayEntries_BadFormat(t *testing.T) {
	entries := []Entry{entry("09:00", "ten")}
	if err := ValidateDayEntries(entries); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("ValidateDayEntries(bad format) = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestValidateTemplates(t *testing.T) {
	ok := []DefaultEntry{
		{StartTime: "08:00", EndTime: "12:00"},
		{StartTime: "12:30", EndTime: "16:30"},
	}
	if err := ValidateTemplates(ok); err != nil {
		t.Errorf("ValidateTemplates(disjoint) = %v, want nil", err)
	}

	bad := []DefaultEntry{
		{StartTime: "08:00", EndTime: "12:00"},
		{StartTime: "11:00", EndTime: "15:00"},
	}
	if err := ValidateTemplates(bad); !errors.Is(err, ErrOverlapConflict) {
		t.Errorf("ValidateTemplates(overlapping) = %v, want ErrOverlapConflict", err)
	}
}
