package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts the standard 5-field form: minute hour dom month dow.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a 5-field cron expression with the same parser
// the scheduler runs, so anything accepted here will also schedule.
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("cron schedule cannot be empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidateTimezone checks that a name resolves in the IANA zone database.
// A container image without tzdata fails here for every zone except UTC.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return fmt.Errorf("timezone cannot be empty")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("timezone %q: %w", tz, err)
	}
	return nil
}

// ValidateDuration checks d against an inclusive range.
func ValidateDuration(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("bad range: min %v exceeds max %v", min, max)
	}
	if d < min || d > max {
		return fmt.Errorf("duration %v outside allowed range [%v, %v]", d, min, max)
	}
	return nil
}

// ValidateIntRange checks v against an inclusive range.
func ValidateIntRange(v, min, max int) error {
	if min > max {
		return fmt.Errorf("bad range: min %d exceeds max %d", min, max)
	}
	if v < min || v > max {
		return fmt.Errorf("value %d outside allowed range [%d, %d]", v, min, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
