package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// record does not exist (or is not visible to the current user).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, non-positive day count).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrAuthRequired is returned when no usable session accompanies a request.
// All session failures collapse into this one error; handlers map it to
// HTTP 401 with a redirect hint to the auth screen.
var ErrAuthRequired = errors.New("authentication required")
