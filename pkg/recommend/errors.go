package recommend

import "errors"

var (
	ErrInvalidReference = errors.New("reference exercise must have an id and a name")
	ErrInvalidLimit     = errors.New("limit is outside the allowed range")
	ErrNoPrimaryMuscle  = errors.New("cannot determine primary muscle group")
	ErrInvalidOffset    = errors.New("offset must not be negative")
)

// IsValidationError reports whether err comes from rejected input rather than a failing collaborator.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, ErrNoPrimaryMuscle) ||
		errors.Is(err, ErrInvalidOffset)
}
