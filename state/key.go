// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package state

// Key identifies one slot in ledger state. Implementations must be immutable.
type Key interface {
	// Size returns the abstract size of the key in bytes. It is stable
	// across feature versions.
	Size() int

	// Encode returns the canonical encoding of the key. The encoded length
	// is version dependent and only used by historical pricing rules.
	Encode() ([]byte, error)
}

var _ Key = (*RawKey)(nil)

// RawKey is a Key over a plain byte string. Its canonical encoding is the
// byte string itself.
type RawKey []byte

func (k RawKey) Size() int {
	return len(k)
}

func (k RawKey) Encode() ([]byte, error) {
	return k, nil
}
