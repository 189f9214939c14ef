package apperrors

import "errors"

var (
	ErrEmptyQuery     = errors.New("query parameter is required")
	ErrUnknownProfile = errors.New("unknown schema profile")
)
