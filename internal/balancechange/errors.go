package balancechange

import (
	"errors"
	"fmt"
)

var (
	// ErrTipUnavailable is returned when the chain tip height could not be determined.
	ErrTipUnavailable = errors.New("failed to fetch latest block number")

	// ErrBlockFetchFailed matches every BlockFetchError through errors.Is.
	ErrBlockFetchFailed = errors.New("failed to process block")

	// ErrMissingTransactions indicates that a provider returned a block without a transaction list.
	ErrMissingTransactions = errors.New("block has no transaction list")

	// ErrInvalidValue indicates a transaction value that is not a non-negative integer.
	ErrInvalidValue = errors.New("invalid transaction value")

	// ErrUnexpected is returned for any other failure during a computation.
	// The underlying cause is logged but never exposed to callers.
	ErrUnexpected = errors.New("an unexpected error occurred while calculating max balance change")
)

// BlockFetchError reports the height of the block that could not be retrieved.
//
// Its message only carries the height; the provider error is reachable
// through errors.Unwrap for logging.
type BlockFetchError struct {
	Height uint64 // Height of the block that failed
	Err    error  // Underlying cause
}

// Error implements the error interface.
func (e *BlockFetchError) Error() string {
	return fmt.Sprintf("%s %d", ErrBlockFetchFailed, e.Height)
}

// Unwrap exposes both ErrBlockFetchFailed and the underlying cause.
func (e *BlockFetchError) Unwrap() []error {
	return []error{ErrBlockFetchFailed, e.Err}
}
