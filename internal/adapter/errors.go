package adapter

import "errors"

var (
	// ErrRemote is matched by every failure of a remote API call.
	ErrRemote = errors.New("remote error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrDeleteRejected is returned when the remote answers a delete request
	// with a status other than "OK".
	ErrDeleteRejected = errors.New("delete rejected")

	// ErrUnexpectedStatus is returned by content transfers when the remote
	// answers with a status the transfer cannot continue from.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrTransport is returned by content transfers on network failures.
	ErrTransport = errors.New("transport error")
)
