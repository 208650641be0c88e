package http

import (
	"errors"

	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/features/raffle/models"
)

// toAppError maps domain errors to API errors: invalid requests become 400,
// missing entities 404, state conflicts 409.
func toAppError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}

	var code apperrors.ErrorCode
	switch {
	case errors.Is(err, models.ErrRaffleNotFound):
		code = apperrors.ErrCodeRaffleNotFound
	case errors.Is(err, models.ErrTicketNotFound):
		code = apperrors.ErrCodeTicketNotFound
	case errors.Is(err, models.ErrPrizeNotFound):
		code = apperrors.ErrCodePrizeNotFound
	case errors.Is(err, models.ErrNotFound):
		code = apperrors.ErrCodeNotFound
	case errors.Is(err, models.ErrRaffleClosed):
		code = apperrors.ErrCodeRaffleClosed
	case errors.Is(err, models.ErrPrizeAlreadyResolved), errors.Is(err, models.ErrNoUnresolvedPrize):
		code = apperrors.ErrCodePrizeState
	case errors.Is(err, models.ErrStateConflict):
		code = apperrors.ErrCodeTicketState
	case errors.Is(err, models.ErrInvalidRequest):
		code = apperrors.ErrCodeBadRequest
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}
	return apperrors.Wrap(err, code, err.Error())
}
