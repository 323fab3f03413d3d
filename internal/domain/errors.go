package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already exists")

	// ErrValidation covers malformed request parameters: unparsable dates,
	// unknown sort fields, bad payment types, missing customer scope. Wrapped
	// with detail via fmt.Errorf("%w: ...").
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientStock is a business-rule rejection, distinct from
	// validation. The sale attempt leaves no partial state behind.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDeliveryFailed reports a mail transport failure. The export itself
	// is still considered generated; delivery is an independent failure domain.
	ErrDeliveryFailed = errors.New("report delivery failed")
)
