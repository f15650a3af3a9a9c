package persona

import "errors"

var (
	// ErrNotFitted is returned when Respond or Update is called before a
	// successful Fit.
	ErrNotFitted = errors.New("persona: clone is not fitted, call Fit first")

	// ErrInvalidDocument is returned when a document in a fit/update batch
	// is malformed. The whole batch is rejected before any index mutation.
	ErrInvalidDocument = errors.New("persona: invalid document")
)
