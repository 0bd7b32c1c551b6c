// Package starkgate is a Go client for the StarkNet gateway and
// feeder-gateway HTTP APIs.
package starkgate

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrMalformedNumber indicates an input could not be parsed as a
	// decimal or hexadecimal integer.
	ErrMalformedNumber = errors.New("starkgate: malformed number")

	// ErrInvalidProgramFormat indicates a contract program document could
	// not be serialized for compression.
	ErrInvalidProgramFormat = errors.New("starkgate: invalid program format")

	// ErrUnknownNetwork indicates the configured network has no preset
	// base URL.
	ErrUnknownNetwork = errors.New("starkgate: unknown network")

	// ErrMissingSalt indicates a deploy transaction was serialized before
	// its contract address salt was resolved.
	ErrMissingSalt = errors.New("starkgate: contract address salt not resolved")

	// ErrMissingContract indicates a deploy transaction has no contract
	// definition attached.
	ErrMissingContract = errors.New("starkgate: missing contract definition")
)

// GatewayError indicates a transport failure or non-2xx response from the
// gateway or feeder-gateway. The client performs no retries; callers decide
// whether the whole operation is worth repeating.
type GatewayError struct {
	// Endpoint is the operation that failed, e.g. "add_transaction".
	Endpoint string

	// StatusCode is the HTTP status, or 0 if the request never completed.
	StatusCode int

	// Body is the raw response body, when one was received.
	Body string

	// Err is the underlying transport error, when the failure happened
	// before any response arrived.
	Err error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("starkgate: request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("starkgate: request to %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// RejectedError indicates the network explicitly refused a transaction.
// Reason carries the status reason text verbatim as reported by the
// feeder-gateway.
type RejectedError struct {
	Hash   Felt
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("starkgate: transaction %s rejected", e.Hash.Hex())
	}
	return fmt.Sprintf("starkgate: transaction %s rejected: %s", e.Hash.Hex(), e.Reason)
}

// UnreachableError indicates a transaction was still not indexed by the
// network after the poller's grace cycle and is presumed dropped. Distinct
// from RejectedError so callers can tell "bad transaction" from "possibly
// lost, check manually".
type UnreachableError struct {
	Hash Felt
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("starkgate: transaction %s not received by the network", e.Hash.Hex())
}
