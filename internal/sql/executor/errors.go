package executor

import "errors"

// Error kinds of the DDL core. Every rejection wraps exactly one of
// these; callers discriminate with errors.Is.
var (
	// ErrValidation: bad reference, duplicate column name, missing
	// index attributes. Raised before any catalog mutation.
	ErrValidation = errors.New("stratadb: validation failed")

	// ErrConflict: the target name already exists, or registration into
	// a container lost a race to a pre-existing name.
	ErrConflict = errors.New("stratadb: name conflict")

	// ErrResource: a physical storage or index handle could not be
	// obtained from a collaborator.
	ErrResource = errors.New("stratadb: resource unavailable")

	// ErrInvariant: programming-contract breach (default database
	// absent, statement missing a required name), not a user error.
	ErrInvariant = errors.New("stratadb: invariant violation")
)
