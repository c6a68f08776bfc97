package interfaces

import "errors"

// Storage-level sentinels shared by every repository implementation.
//
// Repositories follow two conventions:
//   - "not found" on reads is a zero-value entity, not an error;
//   - a failed conditional write (stale status, already claimed, duplicate
//     key) is ErrConditionFailed, so use cases can turn a lost race into a
//     conflict naming the stale assumption.
var (
	ErrConditionFailed = errors.New("storage condition failed")

	// ErrNumberTaken is the insert-time uniqueness violation for order
	// numbers: another writer claimed the number between the allocator's
	// pre-check and the transactional insert.
	ErrNumberTaken = errors.New("order number already taken")
)
