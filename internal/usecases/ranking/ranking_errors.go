package ranking

import "errors"

var (
	ErrIndicatorRequired = errors.New("indicator is required")
	ErrInvalidMonth      = errors.New("invalid month, expected mm-yyyy")
)
