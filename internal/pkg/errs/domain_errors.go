package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAgeRestriction   = errors.New("customer must be at least 18 years old")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomBusy     = errors.New("room is busy")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDurationOutOfRange  = errors.New("reservation duration out of allowed range")

	// Relational guards
	ErrReferentialConflict = errors.New("entity is referenced by an existing reservation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
