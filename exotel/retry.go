package exotel

import (
	"errors"
	"fmt"
)

// CallStatus enumerates call outcomes a retry policy can react to.
type CallStatus string

const (
	CallStatusBusy     CallStatus = "busy"
	CallStatusFailed   CallStatus = "failed"
	CallStatusNoAnswer CallStatus = "no-answer"
)

// Mechanism enumerates retry spacing strategies.
type Mechanism string

const (
	MechanismLinear      Mechanism = "Linear"
	MechanismExponential Mechanism = "Exponential"
)

// Retry is the call-retry policy of a voice campaign. Instances are validated
// at construction and immutable afterwards.
type Retry struct {
	numberOfRetries int
	intervalMins    int
	onStatus        []CallStatus
	mechanism       Mechanism
}

// NewRetry builds a Retry. onStatus must be a non-empty subset of the
// CallStatus values; pass an empty mechanism for the Linear default.
func NewRetry(numberOfRetries, intervalMins int, onStatus []CallStatus, mechanism Mechanism) (*Retry, error) {
	if numberOfRetries < 0 {
		return nil, errors.New("exotel: number_of_retries must not be negative")
	}
	if intervalMins <= 0 {
		return nil, errors.New("exotel: interval_mins must be positive")
	}
	if len(onStatus) == 0 {
		return nil, errors.New("exotel: on_status must not be empty")
	}
	for _, s := range onStatus {
		switch s {
		case CallStatusBusy, CallStatusFailed, CallStatusNoAnswer:
		default:
			return nil, fmt.Errorf("exotel: %s is not a valid value for status", s)
		}
	}

	if mechanism == "" {
		mechanism = MechanismLinear
	}
	switch mechanism {
	case MechanismLinear, MechanismExponential:
	default:
		return nil, fmt.Errorf("exotel: %s is not a valid value for mechanism", mechanism)
	}

	return &Retry{
		numberOfRetries: numberOfRetries,
		intervalMins:    intervalMins,
		onStatus:        append([]CallStatus(nil), onStatus...),
		mechanism:       mechanism,
	}, nil
}

func (r *Retry) payload() map[string]any {
	return map[string]any{
		"mechanism":         string(r.mechanism),
		"on_status":         r.onStatus,
		"number_of_retries": r.numberOfRetries,
		"interval_mins":     r.intervalMins,
	}
}
