// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"math"

	safemath "github.com/Danialkaren/aptos-core/utils/math"
)

type (
	// Gas is a cost in internal gas units.
	Gas uint64

	// GasPerByte is a gas rate applied to a byte count.
	GasPerByte uint64

	// GasPerItem is a gas rate applied to an item count.
	GasPerItem uint64

	// NumBytes counts bytes of state keys, payloads and events.
	NumBytes uint64

	// NumItems counts storage items touched by an operation.
	NumItems uint64
)

// Add returns g + addend.
//
// If overflow would occur, MaxUint64 is returned.
func (g Gas) Add(addend Gas) Gas {
	total, err := safemath.Add64(uint64(g), uint64(addend))
	if err != nil {
		return math.MaxUint64
	}
	return Gas(total)
}

// Cost returns r * n.
//
// If overflow would occur, MaxUint64 is returned.
func (r GasPerByte) Cost(n NumBytes) Gas {
	total, err := safemath.Mul64(uint64(r), uint64(n))
	if err != nil {
		return math.MaxUint64
	}
	return Gas(total)
}

// Cost returns r * n.
//
// If overflow would occur, MaxUint64 is returned.
func (r GasPerItem) Cost(n NumItems) Gas {
	total, err := safemath.Mul64(uint64(r), uint64(n))
	if err != nil {
		return math.MaxUint64
	}
	return Gas(total)
}

// Add returns n + addend.
//
// If overflow would occur, MaxUint64 is returned.
func (n NumBytes) Add(addend NumBytes) NumBytes {
	total, err := safemath.Add64(uint64(n), uint64(addend))
	if err != nil {
		return math.MaxUint64
	}
	return NumBytes(total)
}

// Sub returns n - subtrahend.
//
// If underflow would occur, 0 is returned.
func (n NumBytes) Sub(subtrahend NumBytes) NumBytes {
	total, err := safemath.Sub(uint64(n), uint64(subtrahend))
	if err != nil {
		return 0
	}
	return NumBytes(total)
}
