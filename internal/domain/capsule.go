package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Capsule is a time-locked message that may be opened once OpenDate passes.
type Capsule struct {
	ID               uuid.UUID
	CreatorEmail     string
	Title            string
	Message          string
	MediaURL         *string
	OpenDate         time.Time
	IsOpened         bool
	NotificationSent bool
	CreatedAt        time.Time
}

// CapsuleState is the lifecycle position of a capsule.
type CapsuleState string

const (
	CapsuleStatePending  CapsuleState = "PENDING"
	CapsuleStateNotified CapsuleState = "NOTIFIED"
	CapsuleStateOpened   CapsuleState = "OPENED"
)

func (s CapsuleState) String() string { return string(s) }

// State derives the lifecycle state from the two monotonic flags.
// Opened wins regardless of NotificationSent.
func (c *Capsule) State() CapsuleState {
	switch {
	case c.IsOpened:
		return CapsuleStateOpened
	case c.NotificationSent:
		return CapsuleStateNotified
	default:
		return CapsuleStatePending
	}
}

// CanOpenAt reports whether now is at or after the open date.
func (c *Capsule) CanOpenAt(now time.Time) bool {
	return !now.Before(c.OpenDate)
}

// NeedsOpeningNotification reports whether the opening email is due at now.
func (c *Capsule) NeedsOpeningNotification(now time.Time) bool {
	return c.CanOpenAt(now) && !c.IsOpened && !c.NotificationSent
}

// openDateLayouts are tried in order. Layouts without a zone are read as UTC.
var openDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseOpenDate parses an ISO-8601 timestamp. A missing offset means UTC.
// The result is always normalized to UTC.
func ParseOpenDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range openDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
