package repo

import "errors"

var (
	// ErrPaintNotFound is returned when a paint id is not in the collection.
	ErrPaintNotFound = errors.New("paint not found")
	// ErrListingNotFound is returned when a resale listing id is unknown.
	ErrListingNotFound = errors.New("listing not found")
	// ErrInsufficientQuantity is returned when a purchase exceeds the listed quantity.
	ErrInsufficientQuantity = errors.New("insufficient quantity available")
	// ErrDuplicatedValueUnique is returned when an insert collides with an existing id.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
