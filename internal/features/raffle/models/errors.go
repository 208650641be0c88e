package models

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of them.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrStateConflict  = errors.New("state conflict")
	ErrNotFound       = errors.New("not found")
)

var (
	ErrRaffleNotFound = fmt.Errorf("%w: raffle not found", ErrNotFound)
	ErrTicketNotFound = fmt.Errorf("%w: ticket not found", ErrNotFound)
	ErrPrizeNotFound  = fmt.Errorf("%w: prize not found", ErrNotFound)

	ErrRaffleClosed         = fmt.Errorf("%w: raffle is closed", ErrStateConflict)
	ErrTicketNotAvailable   = fmt.Errorf("%w: ticket is not available", ErrStateConflict)
	ErrTicketNotPending     = fmt.Errorf("%w: ticket is not pending payment", ErrStateConflict)
	ErrTicketNotPurchased   = fmt.Errorf("%w: ticket is not purchased", ErrStateConflict)
	ErrTicketAlreadyFree    = fmt.Errorf("%w: ticket is already available", ErrStateConflict)
	ErrTicketIsWinner       = fmt.Errorf("%w: ticket already won a prize", ErrStateConflict)
	ErrPrizeAlreadyResolved = fmt.Errorf("%w: prize already has a winner", ErrStateConflict)
	ErrNoUnresolvedPrize    = fmt.Errorf("%w: every prize already has a winner", ErrStateConflict)

	ErrInvalidTicketID      = fmt.Errorf("%w: ticket id out of range", ErrInvalidRequest)
	ErrDuplicateTicketID    = fmt.Errorf("%w: duplicate ticket id", ErrInvalidRequest)
	ErrEmptyTicketSelection = fmt.Errorf("%w: no ticket ids given", ErrInvalidRequest)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method", ErrInvalidRequest)
	ErrMissingBuyer         = fmt.Errorf("%w: buyer name and phone are required", ErrInvalidRequest)
	ErrCorruptRaffle        = fmt.Errorf("%w: corrupt raffle record", ErrInvalidRequest)
)

// Kind returns the error kind err belongs to, or nil for foreign errors.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return ErrInvalidRequest
	case errors.Is(err, ErrStateConflict):
		return ErrStateConflict
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return nil
	}
}
