package gateway

import "errors"

var (
	// ErrEmptyPayload indicates there was nothing to submit; no network
	// call is attempted.
	ErrEmptyPayload = errors.New("nothing to submit")

	// ErrNetwork indicates a transport failure reaching the workflow
	// endpoint. The user may retry.
	ErrNetwork = errors.New("workflow endpoint unreachable")

	// ErrEndpoint indicates the workflow endpoint answered with a
	// non-success status. The user may retry.
	ErrEndpoint = errors.New("workflow endpoint rejected submission")
)
