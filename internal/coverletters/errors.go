package coverletters

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cover letter not found")
	ErrForbidden    = errors.New("access denied")
)
