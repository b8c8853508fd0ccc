package field

import "errors"

var (
	// ErrInvalidParams indicates a tuning value outside its valid range.
	ErrInvalidParams = errors.New("field: invalid params")
)
