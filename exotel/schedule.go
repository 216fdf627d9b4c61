package exotel

import (
	"errors"
	"time"
)

// scheduleTimeLayout is ISO-8601 truncated to second precision with an
// explicit UTC offset, matching what the campaign endpoints expect.
const scheduleTimeLayout = "2006-01-02T15:04:05-07:00"

// Schedule is the time window of a campaign. Instances are validated at
// construction and immutable afterwards.
type Schedule struct {
	sendAt time.Time
	endAt  time.Time
}

// NewSchedule builds a Schedule. sendAt is required; pass the zero time for
// endAt to leave the window open-ended. Timestamps are serialized with their
// own offsets, so callers must construct them in the intended location.
func NewSchedule(sendAt, endAt time.Time) (*Schedule, error) {
	if sendAt.IsZero() {
		return nil, errors.New("exotel: schedule requires a send_at timestamp")
	}
	if !endAt.IsZero() && endAt.Before(sendAt) {
		return nil, errors.New("exotel: schedule end_at precedes send_at")
	}
	return &Schedule{sendAt: sendAt, endAt: endAt}, nil
}

// SendAt returns the campaign start time.
func (s *Schedule) SendAt() time.Time { return s.sendAt }

// EndAt returns the campaign end time, zero when open-ended.
func (s *Schedule) EndAt() time.Time { return s.endAt }

// payload serializes the window. Voice campaigns use send_at/end_at, SMS and
// message campaigns use start_time/end_time.
func (s *Schedule) payload(sms bool) map[string]any {
	start, end := "send_at", "end_at"
	if sms {
		start, end = "start_time", "end_time"
	}

	out := map[string]any{
		start: s.sendAt.Format(scheduleTimeLayout),
	}
	if !s.endAt.IsZero() {
		out[end] = s.endAt.Format(scheduleTimeLayout)
	}
	return out
}
