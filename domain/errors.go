package domain

import "errors"

// Error taxonomy shared by services and handlers. Services wrap these with
// fmt.Errorf("%w: ...") and handlers map them to HTTP status codes with
// errors.Is, so no layer matches on message strings.
var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrStorage            = errors.New("storage error")
)
