package exotel

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RollbackPolicy names the failure kinds of a campaign-creation call that
// trigger deletion of the implicitly created list and contacts. Every other
// failure propagates with the provider-side resources left in place.
type RollbackPolicy struct {
	Triggers []error
}

// Default policies. The provider rolls voice campaigns back on payment
// failures as well, the messaging endpoints only on rejected payloads.
var (
	DefaultVoiceRollbackPolicy     = RollbackPolicy{Triggers: []error{ErrValidation, ErrPaymentRequired}}
	DefaultMessagingRollbackPolicy = RollbackPolicy{Triggers: []error{ErrValidation}}
)

// AllFailuresRollbackPolicy rolls back on every mapped provider failure.
var AllFailuresRollbackPolicy = RollbackPolicy{Triggers: []error{
	ErrValidation, ErrAuthenticationFailed, ErrPaymentRequired,
	ErrPermissionDenied, ErrNotFound, ErrThrottled,
}}

func (p RollbackPolicy) triggersOn(err error) bool {
	for _, target := range p.Triggers {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// rollbackList deletes the implicitly created list and its contacts after a
// failed campaign creation. Compensating deletes run to completion; their
// failures are collected and attached to cause so the original error stays
// matchable with errors.Is.
func (c *Client) rollbackList(ctx context.Context, listID string, contactSIDs []string, cause error) error {
	c.logger.Warn("campaign creation failed, reverting list and contact creation",
		zap.String("list_id", listID),
		zap.Int("contacts", len(contactSIDs)),
		zap.Error(cause),
	)

	var cleanup error
	if _, err := c.DeleteList(ctx, listID); err != nil {
		cleanup = multierr.Append(cleanup, fmt.Errorf("delete list %s: %w", listID, err))
	}
	for _, sid := range contactSIDs {
		if _, err := c.DeleteContact(ctx, sid); err != nil {
			cleanup = multierr.Append(cleanup, fmt.Errorf("delete contact %s: %w", sid, err))
		}
	}

	if cleanup == nil {
		return cause
	}
	return multierr.Append(cause, fmt.Errorf("exotel: rollback incomplete: %w", cleanup))
}
