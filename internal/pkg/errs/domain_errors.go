package errs

import "errors"

// Error categories. Use-case errors are marked with one of these at the
// return site so transports can map them without knowing every sentinel.
var (
	// Malformed input: empty plate, unknown tier, negative or non-numeric rate
	ErrValidation = errors.New("validation error")

	// Unknown spot id
	ErrNotFound = errors.New("not found")

	// Duplicate spot id, lost double-booking race, live reservation on delete
	ErrConflict = errors.New("conflict")

	// Operator-only operation without operator rights
	ErrUnauthorized = errors.New("unauthorized")

	// Persistence collaborator failed; the mutation was not committed
	ErrStorage = errors.New("storage error")
)

type Category string

const (
	CategoryValidation   Category = "VALIDATION"
	CategoryNotFound     Category = "NOT_FOUND"
	CategoryConflict     Category = "CONFLICT"
	CategoryUnauthorized Category = "UNAUTHORIZED"
	CategoryStorage      Category = "STORAGE"
	CategoryInternal     Category = "INTERNAL"
)

func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return CategoryValidation
	case Is(err, ErrNotFound):
		return CategoryNotFound
	case Is(err, ErrConflict):
		return CategoryConflict
	case Is(err, ErrUnauthorized):
		return CategoryUnauthorized
	case Is(err, ErrStorage):
		return CategoryStorage
	default:
		return CategoryInternal
	}
}
