package conversion

import "errors"

var (
	// ErrInvalidNumber is returned when the input text is not a finite number
	ErrInvalidNumber = errors.New("invalid number")

	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidBase and ErrInvalidDigit come from the numeral base converter
	ErrInvalidBase  = errors.New("invalid base")
	ErrInvalidDigit = errors.New("invalid digit")

	ErrInvalidCatalog = errors.New("invalid catalog")
)
