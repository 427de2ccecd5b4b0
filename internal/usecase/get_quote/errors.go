package get_quote

import "errors"

var (
	ErrCleanerNotFound = errors.New("get_quote: cleaner not found")
	ErrNotPriced       = errors.New("get_quote: no rate defined for this configuration")
	ErrInvalidInput    = errors.New("get_quote: invalid input data")
	ErrInternal        = errors.New("get_quote: internal error")
)
