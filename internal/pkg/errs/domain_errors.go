package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Slot configuration errors
	ErrSlotSetNotFound  = errors.New("slot configuration not found")
	ErrProductTypeEmpty = errors.New("product type key required")

	// Price override errors
	ErrUnknownSlotID = errors.New("unknown slot id for product type")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
