// File: services/showing/slots.go
package showing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rentaldesk/models"
)

// DayOfWeek returns the weekday (0 = Sunday .. 6 = Saturday) for a civil date.
// It is computed from the literal (year, month, day) triple; no timestamp parsing
// is involved, so a server's timezone can never shift the weekday.
func DayOfWeek(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// ParseCivilDate splits a "YYYY-MM-DD" string into its integer components.
func ParseCivilDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: out of range", s)
	}
	return year, month, day, nil
}

// minutesOfDay parses a 24-hour "HH:MM" string into minutes since midnight.
func minutesOfDay(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// parseClockTime accepts either "HH:MM" or "h:MM AM/PM" and returns minutes since midnight.
func parseClockTime(s string) (int, bool) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)

	var ampm string
	switch {
	case strings.HasSuffix(upper, "AM"):
		ampm = "AM"
	case strings.HasSuffix(upper, "PM"):
		ampm = "PM"
	default:
		return minutesOfDay(s)
	}

	clock := strings.TrimSpace(upper[:len(upper)-2])
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, false
	}
	if hour == 12 {
		hour = 0
	}
	if ampm == "PM" {
		hour += 12
	}
	return hour*60 + minute, true
}

// formatValue renders minutes since midnight as zero-padded "HH:MM".
func formatValue(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// formatDisplay renders minutes since midnight as "h:MM AM/PM".
func formatDisplay(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}

// AvailableSlots expands availability rules into bookable slots, dropping any slot
// whose start collides with an already-booked time.
//
// Rules are expected to be pre-filtered to the requested weekday and isActive;
// inactive rules are skipped anyway. Rules with a non-positive slot duration or
// unparseable window times yield no slots rather than an error, so one bad row
// never empties the whole response. Booked times are matched by normalized
// minute-of-day, not string equality, and accept either "HH:MM" or "h:MM AM/PM";
// an unparseable booked entry blocks nothing. Duplicate slot starts produced by
// overlapping rules are collapsed, first rule wins.
//
// The result is deterministic for a given input: rule order, then ascending start
// offset within each rule's window.
func AvailableSlots(rules []models.AvailabilityRule, bookedTimes []string) []models.Slot {
	booked := make(map[int]bool, len(bookedTimes))
	for _, bt := range bookedTimes {
		if m, ok := parseClockTime(bt); ok {
			booked[m] = true
		}
	}

	slots := []models.Slot{}
	seen := make(map[int]bool)
	for _, rule := range rules {
		if !rule.IsActive || rule.SlotDuration <= 0 {
			continue
		}
		start, ok := minutesOfDay(rule.StartTime)
		if !ok {
			continue
		}
		end, ok := minutesOfDay(rule.EndTime)
		if !ok {
			continue
		}

		for cursor := start; cursor+rule.SlotDuration <= end; cursor += rule.SlotDuration {
			if booked[cursor] || seen[cursor] {
				continue
			}
			seen[cursor] = true
			slots = append(slots, models.Slot{
				Time:     formatDisplay(cursor),
				Value:    formatValue(cursor),
				Duration: rule.SlotDuration,
			})
		}
	}
	return slots
}
