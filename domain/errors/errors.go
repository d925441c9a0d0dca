package errors

import "errors"

var (
	ErrInvalidTripData      = errors.New("invalid trip data")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYearType = errors.New("invalid birth year type")
	ErrMissingColumn        = errors.New("missing required column")
	ErrUnknownCity          = errors.New("unknown city")
	ErrInputClosed          = errors.New("input closed")
)
