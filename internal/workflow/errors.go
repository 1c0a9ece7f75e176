package workflow

import "errors"

// Error taxonomy surfaced by the workflow service. Handlers map these to
// HTTP status codes; anything else is a wrapped persistence failure.
var (
	// ErrDocumentNotFound - the document id does not resolve.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDepartment - empty or unknown department name.
	ErrInvalidDepartment = errors.New("invalid department")

	// ErrMissingField - a required field was not provided.
	ErrMissingField = errors.New("missing required field")

	// ErrNotAtDestination - finalize requested before the document reached
	// its final destination.
	ErrNotAtDestination = errors.New("document is not at its final destination")

	// ErrAlreadyFinalized - the document is in its terminal state; no
	// further transitions are permitted.
	ErrAlreadyFinalized = errors.New("document is already finalized")
)
