package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrMalformedEnvelope = errors.New("malformed package envelope")
	ErrMalformedPackage  = errors.New("malformed package payload")
	ErrInvalidDiscovery  = errors.New("invalid discovery response")
)
