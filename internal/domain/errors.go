// internal/domain/errors.go
package domain

import "errors"

var (
	// Table generation errors
	ErrInvalidSpec = errors.New("invalid character spec")

	// Manifest loading errors
	ErrIncludeCycle = errors.New("include cycle")
	ErrParse        = errors.New("parse error")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
