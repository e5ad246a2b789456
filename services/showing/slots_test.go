package showing

import (
	"reflect"
	"testing"

	"rentaldesk/models"
)

func rule(day int, start, end string, duration int) models.AvailabilityRule {
	return models.AvailabilityRule{
		PropertyID:   "prop-1",
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		SlotDuration: duration,
		IsActive:     true,
	}
}

func TestAvailableSlotsBasicWindow(t *testing.T) {
	got := AvailableSlots([]models.AvailabilityRule{rule(1, "09:00", "10:00", 30)}, nil)
	want := []models.Slot{
		{Time: "9:00 AM", Value: "09:00", Duration: 30},
		{Time: "9:30 AM", Value: "09:30", Duration: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsBookedSlotRemoved(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "10:00", 30)}

	got := AvailableSlots(rules, []string{"9:30 AM"})
	want := []models.Slot{{Time: "9:00 AM", Value: "09:00", Duration: 30}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("display-format booking: got %+v, want %+v", got, want)
	}

	// The same booking stored in canonical 24-hour form blocks the slot too.
	got = AvailableSlots(rules, []string{"09:30"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("24h-format booking: got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsUnparseableBookingBlocksNothing(t *testing.T) {
	got := AvailableSlots([]models.AvailabilityRule{rule(1, "09:00", "10:00", 30)}, []string{"half past nine"})
	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d: %+v", len(got), got)
	}
}

func TestAvailableSlotsInvertedWindow(t *testing.T) {
	for _, duration := range []int{15, 30, 60} {
		got := AvailableSlots([]models.AvailabilityRule{rule(1, "17:00", "09:00", duration)}, nil)
		if len(got) != 0 {
			t.Fatalf("duration %d: expected no slots from inverted window, got %+v", duration, got)
		}
	}
}

func TestAvailableSlotsFloorSemantics(t *testing.T) {
	// 45-minute slots in a 60-minute window: exactly one, never a truncated second.
	got := AvailableSlots([]models.AvailabilityRule{rule(1, "09:00", "10:00", 45)}, nil)
	want := []models.Slot{{Time: "9:00 AM", Value: "09:00", Duration: 45}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsBadRulesSkipped(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(1, "09:00", "10:00", 0),   // non-positive duration
		rule(1, "09:00", "10:00", -30), // negative duration
		rule(1, "late", "10:00", 30),   // unparseable start
		rule(1, "09:00", "soon", 30),   // unparseable end
		rule(1, "10:00", "11:00", 30),  // the one good rule
	}
	got := AvailableSlots(rules, nil)
	want := []models.Slot{
		{Time: "10:00 AM", Value: "10:00", Duration: 30},
		{Time: "10:30 AM", Value: "10:30", Duration: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsInactiveRuleSkipped(t *testing.T) {
	inactive := rule(1, "09:00", "10:00", 30)
	inactive.IsActive = false
	got := AvailableSlots([]models.AvailabilityRule{inactive}, nil)
	if len(got) != 0 {
		t.Fatalf("expected no slots from inactive rule, got %+v", got)
	}
}

func TestAvailableSlotsOverlappingRulesDeduplicated(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(1, "09:00", "10:00", 30),
		rule(1, "09:30", "10:30", 30),
	}
	got := AvailableSlots(rules, nil)
	want := []models.Slot{
		{Time: "9:00 AM", Value: "09:00", Duration: 30},
		{Time: "9:30 AM", Value: "09:30", Duration: 30},
		{Time: "10:00 AM", Value: "10:00", Duration: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsNoonAndMidnightDisplay(t *testing.T) {
	got := AvailableSlots([]models.AvailabilityRule{rule(1, "00:00", "01:00", 60)}, nil)
	want := []models.Slot{{Time: "12:00 AM", Value: "00:00", Duration: 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("midnight: got %+v, want %+v", got, want)
	}

	got = AvailableSlots([]models.AvailabilityRule{rule(1, "12:00", "13:00", 60)}, nil)
	want = []models.Slot{{Time: "12:00 PM", Value: "12:00", Duration: 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("noon: got %+v, want %+v", got, want)
	}
}

func TestAvailableSlotsDeterministic(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(2, "09:00", "12:00", 45),
		rule(2, "13:00", "17:00", 60),
	}
	booked := []string{"10:30 AM", "2:00 PM"}

	first := AvailableSlots(rules, booked)
	second := AvailableSlots(rules, booked)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2024, 1, 7, 0},  // Sunday, the documented historical bug case
		{2024, 1, 8, 1},  // Monday
		{2024, 2, 29, 4}, // leap-day Thursday
		{2025, 12, 31, 3},
		{2000, 1, 1, 6},
	}
	for _, tt := range tests {
		if got := DayOfWeek(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DayOfWeek(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestParseCivilDate(t *testing.T) {
	y, m, d, err := ParseCivilDate("2024-01-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != 2024 || m != 1 || d != 7 {
		t.Fatalf("got (%d, %d, %d)", y, m, d)
	}

	for _, bad := range []string{"", "2024", "2024-01", "01-07-2024x", "2024-13-01", "2024-00-10", "2024-01-32", "yyyy-mm-dd"} {
		if _, _, _, err := ParseCivilDate(bad); err == nil {
			t.Errorf("ParseCivilDate(%q): expected error", bad)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:30", 570, true},
		{"9:30 AM", 570, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"11:59 PM", 1439, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"2:05 pm", 845, true},
		{"24:00", 0, false},
		{"13:00 PM", 0, false},
		{"0:30 AM", 0, false},
		{"nonsense", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseClockTime(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseClockTime(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{570, "9:30 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{1439, "11:59 PM"},
	}
	for _, tt := range tests {
		if got := formatDisplay(tt.minutes); got != tt.want {
			t.Errorf("formatDisplay(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
