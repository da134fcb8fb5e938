package notes

import "errors"

var (
	// ErrNotFound is returned when a note id is not in the repository.
	ErrNotFound = errors.New("note not found")
	// ErrConfirmationRequired is returned when a destructive operation is
	// attempted without the caller's explicit confirmation flag.
	ErrConfirmationRequired = errors.New("confirmation required")
)
