package inventory

import "errors"

var (
	// ErrStorage reports a missing, unreadable, unwritable or malformed inventory file.
	ErrStorage = errors.New("inventory storage error")

	// ErrNotFound reports that no record matches a (name, colour) key.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicate reports an add for a key that already exists.
	ErrDuplicate = errors.New("item already exists")

	// ErrInvalidInput reports a bad price, quantity, field or cart line.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock reports a purchase larger than the quantity on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
)
