package exotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetryValidation(t *testing.T) {
	cases := []struct {
		name      string
		retries   int
		interval  int
		onStatus  []CallStatus
		mechanism Mechanism
	}{
		{"negative retries", -1, 5, []CallStatus{CallStatusBusy}, MechanismLinear},
		{"zero interval", 2, 0, []CallStatus{CallStatusBusy}, MechanismLinear},
		{"empty on_status", 2, 5, nil, MechanismLinear},
		{"unknown status", 2, 5, []CallStatus{"answered"}, MechanismLinear},
		{"unknown mechanism", 2, 5, []CallStatus{CallStatusBusy}, "Quadratic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRetry(tc.retries, tc.interval, tc.onStatus, tc.mechanism)
			assert.Error(t, err)
		})
	}
}

func TestNewRetryDefaultsToLinear(t *testing.T) {
	r, err := NewRetry(3, 10, []CallStatus{CallStatusBusy, CallStatusNoAnswer}, "")
	require.NoError(t, err)

	got := r.payload()
	assert.Equal(t, "Linear", got["mechanism"])
	assert.Equal(t, 3, got["number_of_retries"])
	assert.Equal(t, 10, got["interval_mins"])
	assert.Equal(t, []CallStatus{CallStatusBusy, CallStatusNoAnswer}, got["on_status"])
}

func TestNewRetryAcceptsExponential(t *testing.T) {
	r, err := NewRetry(0, 1, []CallStatus{CallStatusFailed}, MechanismExponential)
	require.NoError(t, err)
	assert.Equal(t, "Exponential", r.payload()["mechanism"])
}
