package errorvalues

import "errors"

var (
	ErrActivationConflict     = errors.New("player already has an active injury")
	ErrCatalogEntryNotFound   = errors.New("injury catalog entry doesn't exist")
	ErrInjuryNotFound         = errors.New("injury assignment doesn't exist")
	ErrNoActiveInjury         = errors.New("player has no active injury")
	ErrNetwork                = errors.New("network failure")
	ErrTaskNotFound           = errors.New("task is not prescribed for today")
	ErrInvalidTransition      = errors.New("event is not allowed in current triage step")
	ErrResolutionNotConfirmed = errors.New("resolution was not confirmed")
	ErrInvalidProgress        = errors.New("progress percent must be within 0..100")
	ErrInvalidToken           = errors.New("invalid token")
	ErrForbidden              = errors.New("access to another player's data")
	ErrValidation             = errors.New("validation error")
)
