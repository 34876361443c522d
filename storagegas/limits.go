// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import (
	"errors"
	"math"

	"github.com/holiman/uint256"

	"github.com/Danialkaren/aptos-core/gas"
	"github.com/Danialkaren/aptos-core/state"
	"github.com/Danialkaren/aptos-core/utils/units"
)

// ErrStorageWriteLimitReached is the only failure CheckChangeSet reports. It
// carries no sub-classification of which cap tripped; the transaction is
// rejected as a whole and the next one proceeds.
var ErrStorageWriteLimitReached = errors.New("storage write limit reached")

// Checker validates the aggregate effects of one transaction.
type Checker interface {
	CheckChangeSet(changeSet *state.ChangeSet) error
}

var _ Checker = ChangeSetLimits{}

// ChangeSetLimits caps the bytes a single transaction may write and emit.
// Limits are immutable; a configuration change produces a new value.
type ChangeSetLimits struct {
	version Version

	maxBytesPerWriteOp                gas.NumBytes
	maxBytesAllWriteOpsPerTransaction gas.NumBytes
	maxBytesPerEvent                  gas.NumBytes
	maxBytesAllEventsPerTransaction   gas.NumBytes
}

// NewChangeSetLimits resolves the caps active at [version]. Versions below 3
// historically had no limits at all; that behavior is preserved exactly.
func NewChangeSetLimits(version Version, params *GasParameters) ChangeSetLimits {
	switch {
	case version.HasConfigurableLimits():
		return newChangeSetLimits(
			version,
			params.MaxBytesPerWriteOp,
			params.MaxBytesAllWriteOpsPerTransaction,
			params.MaxBytesPerEvent,
			params.MaxBytesAllEventsPerTransaction,
		)
	case version.HasFreeWriteQuota():
		return newChangeSetLimits(3, units.MiB, math.MaxUint64, units.MiB, 10*units.MiB)
	default:
		return UnlimitedLimitsAt(version)
	}
}

// UnlimitedLimitsAt returns limits with every cap at the maximum
// representable value, pinned at [version].
func UnlimitedLimitsAt(version Version) ChangeSetLimits {
	return newChangeSetLimits(
		version,
		math.MaxUint64,
		math.MaxUint64,
		math.MaxUint64,
		math.MaxUint64,
	)
}

func newChangeSetLimits(
	version Version,
	maxBytesPerWriteOp gas.NumBytes,
	maxBytesAllWriteOpsPerTransaction gas.NumBytes,
	maxBytesPerEvent gas.NumBytes,
	maxBytesAllEventsPerTransaction gas.NumBytes,
) ChangeSetLimits {
	return ChangeSetLimits{
		version:                           version,
		maxBytesPerWriteOp:                maxBytesPerWriteOp,
		maxBytesAllWriteOpsPerTransaction: maxBytesAllWriteOpsPerTransaction,
		maxBytesPerEvent:                  maxBytesPerEvent,
		maxBytesAllEventsPerTransaction:   maxBytesAllEventsPerTransaction,
	}
}

func (l ChangeSetLimits) Version() Version {
	return l.version
}

// LegacyResourceCreationAsModification reports whether resource creations
// must be reclassified as modifications before committing, a historical rule
// fixed at version 3. Consumers outside this package apply the
// reclassification; this package only exposes the predicate.
func (l ChangeSetLimits) LegacyResourceCreationAsModification() bool {
	return l.version < 3
}

// CheckChangeSet validates [changeSet] against the caps. Writes are checked
// first, in change-set order, then events in emission order; the first
// violation short-circuits. Which entry fails under which inputs is part of
// the consensus contract, so the order must never change.
//
// A size equal to its cap passes; only strictly exceeding it fails. Running
// totals accumulate in 256-bit intermediates, so they cannot overflow even
// with every cap at MaxUint64.
func (l ChangeSetLimits) CheckChangeSet(changeSet *state.ChangeSet) error {
	var writeSetSize uint256.Int
	for _, write := range changeSet.Writes() {
		data, ok := write.Op.Bytes()
		if !ok {
			continue
		}
		size := gas.NumBytes(len(data)).Add(gas.NumBytes(write.Key.Size()))
		if size > l.maxBytesPerWriteOp {
			return ErrStorageWriteLimitReached
		}
		writeSetSize.AddUint64(&writeSetSize, uint64(size))
		if writeSetSize.GtUint64(uint64(l.maxBytesAllWriteOpsPerTransaction)) {
			return ErrStorageWriteLimitReached
		}
	}

	var totalEventSize uint256.Int
	for _, event := range changeSet.Events() {
		size := gas.NumBytes(len(event.Data()))
		if size > l.maxBytesPerEvent {
			return ErrStorageWriteLimitReached
		}
		totalEventSize.AddUint64(&totalEventSize, uint64(size))
		if totalEventSize.GtUint64(uint64(l.maxBytesAllEventsPerTransaction)) {
			return ErrStorageWriteLimitReached
		}
	}

	return nil
}
