package usecase

import (
	"context"
	"strconv"
	"time"

	"bookcatalog/internal/domain/repository"
	"bookcatalog/pkg/logger"
)

const (
	SessionKeyCheckout  = "lastCheckoutSession"
	SessionKeyTimestamp = "checkoutTimestamp"

	// PaymentStatusPaid is the backend's terminal status for a settled session.
	PaymentStatusPaid = "paid"

	// checkoutFreshness bounds how long a stored checkout session stays
	// relevant after the user left for payment.
	checkoutFreshness = 5 * time.Minute
)

// SessionStore is the persisted key/value capability holding the checkout
// markers between page loads.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type CheckoutResumeUseCase struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	sessions    SessionStore
	clock       Clock
}

// NewCheckoutResumeUseCase wires the resume check. A nil clock falls back to
// the system clock.
func NewCheckoutResumeUseCase(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	sessions SessionStore,
	clock Clock,
) *CheckoutResumeUseCase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CheckoutResumeUseCase{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		sessions:    sessions,
		clock:       clock,
	}
}

// Resume runs the startup check for a recently started checkout. When both
// markers are present and fresh it queries the payment status, clears the
// cart if the session was paid, refreshes the cart total and discards the
// markers. Stale or unparseable markers are discarded without querying. A
// status-query or cart-clear error leaves the markers in place so the check
// can be retried on the next startup while still fresh.
//
// The returned total is valid only when refreshed is true.
func (u *CheckoutResumeUseCase) Resume(ctx context.Context) (total int, refreshed bool, err error) {
	sessionID, haveSession := u.sessions.Get(SessionKeyCheckout)
	timestamp, haveTimestamp := u.sessions.Get(SessionKeyTimestamp)
	if !haveSession || !haveTimestamp {
		return 0, false, nil
	}

	if !u.isFresh(timestamp) {
		logger.Debug("Discarding stale checkout session %s", sessionID)
		u.discardMarkers()
		return 0, false, nil
	}

	status, err := u.paymentRepo.Status(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to check payment status for session %s: %v", sessionID, err)
		return 0, false, err
	}

	if status == PaymentStatusPaid {
		if err := u.cartRepo.Clear(ctx); err != nil {
			logger.Error("Failed to clear cart after payment: %v", err)
			return 0, false, err
		}
		logger.Info("Cleared cart for paid session %s", sessionID)
	}

	if cart, err := u.cartRepo.Summary(ctx); err != nil {
		logger.Warn("Failed to refresh cart total after resume check: %v", err)
	} else {
		total = cart.TotalItems
		refreshed = true
	}

	u.discardMarkers()
	return total, refreshed, nil
}

func (u *CheckoutResumeUseCase) isFresh(timestamp string) bool {
	ms, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	return u.clock.Now().Sub(time.UnixMilli(ms)) < checkoutFreshness
}

func (u *CheckoutResumeUseCase) discardMarkers() {
	if err := u.sessions.Delete(SessionKeyCheckout); err != nil {
		logger.Warn("Failed to remove checkout session marker: %v", err)
	}
	if err := u.sessions.Delete(SessionKeyTimestamp); err != nil {
		logger.Warn("Failed to remove checkout timestamp marker: %v", err)
	}
}
