// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "fmt"

// WriteOpKind enumerates the effects a transaction can have on one key. The
// set is closed; pricing and validation switch over it exhaustively.
type WriteOpKind uint8

const (
	Creation WriteOpKind = iota
	Modification
	Deletion
)

func (k WriteOpKind) String() string {
	switch k {
	case Creation:
		return "creation"
	case Modification:
		return "modification"
	case Deletion:
		return "deletion"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// WriteOp is one write to one state key. Creations and modifications carry a
// payload; deletions never do. Any kind may carry opaque metadata. WriteOps
// are immutable once constructed.
type WriteOp struct {
	kind     WriteOpKind
	data     []byte
	metadata []byte
}

func NewCreation(data []byte) WriteOp {
	return WriteOp{kind: Creation, data: data}
}

func NewCreationWithMetadata(data, metadata []byte) WriteOp {
	return WriteOp{kind: Creation, data: data, metadata: metadata}
}

func NewModification(data []byte) WriteOp {
	return WriteOp{kind: Modification, data: data}
}

func NewModificationWithMetadata(data, metadata []byte) WriteOp {
	return WriteOp{kind: Modification, data: data, metadata: metadata}
}

func NewDeletion() WriteOp {
	return WriteOp{kind: Deletion}
}

func NewDeletionWithMetadata(metadata []byte) WriteOp {
	return WriteOp{kind: Deletion, metadata: metadata}
}

func (op WriteOp) Kind() WriteOpKind {
	return op.kind
}

// Bytes returns the payload and whether the op carries one. Deletions carry
// no payload.
func (op WriteOp) Bytes() ([]byte, bool) {
	if op.kind == Deletion {
		return nil, false
	}
	return op.data, true
}

// Metadata returns the auxiliary metadata and whether the op carries any.
func (op WriteOp) Metadata() ([]byte, bool) {
	return op.metadata, op.metadata != nil
}
