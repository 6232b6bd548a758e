package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Operation / aggregation errors
	ErrOperationNotFound = errors.New("operation not found")
	ErrUpstreamFailure   = errors.New("upstream fetch failed")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidSchedule     = errors.New("invalid schedule window")

	// Customer errors
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateCustomer = errors.New("duplicate customer")

	// Vehicle errors
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrDuplicateLicensePlate = errors.New("duplicate license plate")

	// Consent errors
	ErrConsentTemplateNotFound = errors.New("consent template not found")
	ErrConsentGrantNotFound    = errors.New("consent grant not found")
	ErrConsentAlreadyGranted   = errors.New("consent already granted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
