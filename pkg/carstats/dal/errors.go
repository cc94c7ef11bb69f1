package dal

import "errors"

var (
	// ErrInvalidArgument is returned when a caller supplied parameter breaks a precondition
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation is undefined for the current collection
	ErrInvalidState = errors.New("invalid state")

	// ErrResourceAccess is returned when the backing data file cannot be read or decoded
	ErrResourceAccess = errors.New("resource access")

	// ErrValidation is returned when a raw record cannot be turned into a Car
	ErrValidation = errors.New("validation failed")
)
