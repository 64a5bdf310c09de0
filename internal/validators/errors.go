package validators

import "errors"

// Validation errors returned when an imported backup document is rejected.
// Rejection happens before any store is written, so a failed validation
// never corrupts existing data.
var (
	// ErrMalformedDocument indicates the supplied text is not a JSON
	// object at the top level.
	ErrMalformedDocument = errors.New("backup document is malformed")

	// ErrNoKnownSections indicates a well-formed JSON object that carries
	// none of the expected users/config/analytics sections.
	ErrNoKnownSections = errors.New("backup document contains no known sections")
)
