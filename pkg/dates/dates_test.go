package dates

import (
	"testing"
	"time"
)

// A Tuesday, used as the injected "now" throughout.
var tuesday = time.Date(2024, time.November, 12, 15, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_RelativeWords(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", date(2024, time.November, 12)},
		{"Today", date(2024, time.November, 12)},
		{"tonight", date(2024, time.November, 12)},
		{"tomorrow", date(2024, time.November, 13)},
		{"this week", date(2024, time.November, 12)},
		{"next week", date(2024, time.November, 19)},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input, tuesday)
		if !ok {
			t.Errorf("Parse(%q) not ok", tt.input)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_WeekdayNames(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"Friday", date(2024, time.November, 15)},
		{"this Friday", date(2024, time.November, 15)},
		{"next friday", date(2024, time.November, 15)},
		{"fri", date(2024, time.November, 15)},
		{"Monday", date(2024, time.November, 18)},
		{"Wednesday", date(2024, time.November, 13)},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input, tuesday)
		if !ok {
			t.Errorf("Parse(%q) not ok", tt.input)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// Naming today's weekday means next week's occurrence, not today.
func TestParse_WeekdayOnSameWeekday(t *testing.T) {
	got, ok := Parse("Tuesday", tuesday)
	if !ok {
		t.Fatal("Parse(Tuesday) not ok")
	}
	want := date(2024, time.November, 19)
	if !got.Equal(want) {
		t.Errorf("Parse(Tuesday) on a Tuesday = %v, want %v (7 days out)", got, want)
	}

	if days, ok := DaysUntil("Tuesday", tuesday); !ok || days != 7 {
		t.Errorf("DaysUntil(Tuesday) on a Tuesday = %d,%v, want 7,true", days, ok)
	}
}

func TestParse_MonthDay(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"Nov 15", date(2024, time.November, 15)},
		{"November 15", date(2024, time.November, 15)},
		{"November 15th", date(2024, time.November, 15)},
		{"nov 15", date(2024, time.November, 15)},
		{"December 25, 2024", date(2024, time.December, 25)},
		{"2024-11-30", date(2024, time.November, 30)},
		// Already past this year: rolls forward.
		{"Jan 5", date(2025, time.January, 5)},
		{"November 11", date(2025, time.November, 11)},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input, tuesday)
		if !ok {
			t.Errorf("Parse(%q) not ok", tt.input)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "soonish", "TBD", "every day", "15"} {
		if _, ok := Parse(input, tuesday); ok {
			t.Errorf("Parse(%q) = ok, want not ok", input)
		}
	}
}

func TestParse_IsPure(t *testing.T) {
	a, okA := Parse("this Friday", tuesday)
	b, okB := Parse("this Friday", tuesday)
	if okA != okB || !a.Equal(b) {
		t.Errorf("Parse is not deterministic: %v vs %v", a, b)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"today", 0},
		{"tomorrow", 1},
		{"Nov 15", 3},
		{"next week", 7},
	}

	for _, tt := range tests {
		got, ok := DaysUntil(tt.input, tuesday)
		if !ok {
			t.Errorf("DaysUntil(%q) not ok", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	if _, ok := DaysUntil("no idea", tuesday); ok {
		t.Error("DaysUntil(no idea) = ok, want not ok")
	}
}
