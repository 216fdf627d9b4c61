package exotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleRequiresSendAt(t *testing.T) {
	_, err := NewSchedule(time.Time{}, time.Time{})
	assert.Error(t, err)
}

func TestNewScheduleRejectsInvertedWindow(t *testing.T) {
	sendAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := NewSchedule(sendAt, sendAt.Add(-time.Hour))
	assert.Error(t, err)
}

func TestSchedulePayloadFieldNames(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	sendAt := time.Date(2024, 5, 1, 10, 0, 0, 123456789, ist)
	endAt := time.Date(2024, 5, 1, 18, 30, 0, 0, ist)

	s, err := NewSchedule(sendAt, endAt)
	require.NoError(t, err)

	voice := s.payload(false)
	assert.Equal(t, map[string]any{
		"send_at": "2024-05-01T10:00:00+05:30",
		"end_at":  "2024-05-01T18:30:00+05:30",
	}, voice)

	sms := s.payload(true)
	assert.Equal(t, map[string]any{
		"start_time": "2024-05-01T10:00:00+05:30",
		"end_time":   "2024-05-01T18:30:00+05:30",
	}, sms)
}

func TestSchedulePayloadOmitsOpenEnd(t *testing.T) {
	sendAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s, err := NewSchedule(sendAt, time.Time{})
	require.NoError(t, err)

	got := s.payload(false)
	assert.Equal(t, map[string]any{"send_at": "2024-05-01T10:00:00+00:00"}, got)
}
