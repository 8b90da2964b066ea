package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstream indicates that an external rate or history API call failed
// (network error, non-success status, or malformed body).
var ErrUpstream = errors.New("upstream service failure")

// ErrInsufficientData indicates a history series too short to chart (fewer than 2 points).
var ErrInsufficientData = errors.New("insufficient data")
