package config

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{
			"midweek",
			time.Date(2024, time.November, 13, 15, 30, 0, 0, time.UTC), // Wednesday
			time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday rolls to next monday",
			time.Date(2024, time.November, 11, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday",
			time.Date(2024, time.November, 17, 23, 0, 0, 0, time.UTC),
			time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			"month boundary",
			time.Date(2024, time.November, 27, 12, 0, 0, 0, time.UTC), // Wednesday
			time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			wantEnd := tt.wantStart.AddDate(0, 0, 6)
			if !end.Equal(wantEnd) {
				t.Errorf("end = %v, want %v", end, wantEnd)
			}
			if start.Weekday() != time.Monday || end.Weekday() != time.Sunday {
				t.Errorf("range %v - %v is not Monday through Sunday", start, end)
			}
		})
	}
}

func TestTheaterPriority(t *testing.T) {
	if got := TheaterPriority("Film Forum"); got != 2 {
		t.Errorf("Film Forum priority = %d, want 2", got)
	}
	if got := TheaterPriority("Paris Theater"); got != 1 {
		t.Errorf("Paris Theater priority = %d, want 1", got)
	}
	if got := TheaterPriority("Some Unknown Venue"); got != 5 {
		t.Errorf("unknown theater priority = %d, want 5", got)
	}
}

func TestTheaterURL(t *testing.T) {
	if got := TheaterURL("Metrograph"); got != "https://metrograph.com/" {
		t.Errorf("Metrograph URL = %q", got)
	}
	if got := TheaterURL("Some Unknown Venue"); got != "" {
		t.Errorf("unknown theater URL = %q, want empty", got)
	}
}

func TestDefaultFilter(t *testing.T) {
	cfg := DefaultFilter()
	if cfg.SaleWindowDays != 14 {
		t.Errorf("SaleWindowDays = %d, want 14", cfg.SaleWindowDays)
	}
	if len(cfg.SpecialKeywords) == 0 || len(cfg.RepertoryTheaters) == 0 || len(cfg.PriorityTheaters) == 0 {
		t.Error("default filter tables must be populated")
	}
	for _, name := range cfg.PriorityTheaters {
		if _, ok := DefaultTheaters[name]; !ok {
			t.Errorf("priority theater %q missing from DefaultTheaters", name)
		}
	}
}
