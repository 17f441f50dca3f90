package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			HorizonDays:          7,
			SlotStepMinutes:      30,
			BusinessHoursOpen:    8,
			BusinessHoursClose:   18,
			MaxSuggestedSlots:    5,
			DefaultWorkStart:     "09:00",
			DefaultWorkEnd:       "17:00",
			DefaultBufferMinutes: 15,
			CalendarProvider:     "none",
			PatternCacheTTL:      10 * time.Minute,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_BadHorizon(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.HorizonDays = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero horizon accepted")
	}
}

func TestValidate_BadBusinessHours(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.BusinessHoursOpen = 18
	cfg.Scheduler.BusinessHoursClose = 8
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted business hours accepted")
	}
}

func TestValidate_BadCalendarProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.CalendarProvider = "outlook"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown calendar provider accepted")
	}
}

func TestValidate_GoogleProviderNeedsClientID(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.CalendarProvider = "google"
	if err := cfg.Validate(); err == nil {
		t.Fatal("google provider without client ID accepted")
	}

	cfg.OAuth.Google.ClientID = "client-id"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("google provider with client ID rejected: %v", err)
	}
}
