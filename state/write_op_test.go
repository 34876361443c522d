// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteOpBytes(t *testing.T) {
	require := require.New(t)

	data, ok := NewCreation([]byte{1, 2, 3}).Bytes()
	require.True(ok)
	require.Equal([]byte{1, 2, 3}, data)

	// an empty payload is still a payload
	data, ok = NewModification(nil).Bytes()
	require.True(ok)
	require.Empty(data)

	_, ok = NewDeletion().Bytes()
	require.False(ok)

	_, ok = NewDeletionWithMetadata([]byte("m")).Bytes()
	require.False(ok)
}

func TestWriteOpMetadata(t *testing.T) {
	require := require.New(t)

	_, ok := NewCreation(nil).Metadata()
	require.False(ok)

	metadata, ok := NewModificationWithMetadata(nil, []byte("m")).Metadata()
	require.True(ok)
	require.Equal([]byte("m"), metadata)
}

func TestWriteOpKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("creation", Creation.String())
	require.Equal("modification", Modification.String())
	require.Equal("deletion", Deletion.String())
	require.Equal("unknown(7)", WriteOpKind(7).String())
}

func TestRawKey(t *testing.T) {
	require := require.New(t)

	key := RawKey([]byte("account/0x1"))
	require.Equal(11, key.Size())

	encoded, err := key.Encode()
	require.NoError(err)
	require.Equal([]byte("account/0x1"), encoded)
}

func TestChangeSetPreservesOrder(t *testing.T) {
	require := require.New(t)

	writes := []Write{
		{Key: RawKey{0x01}, Op: NewCreation([]byte("a"))},
		{Key: RawKey{0x02}, Op: NewDeletion()},
	}
	events := []Event{
		NewEvent([]byte("first")),
		NewEventWithMetadata([]byte("second"), []byte("m")),
	}

	changeSet := NewChangeSet(writes, events)
	require.Equal(writes, changeSet.Writes())
	require.Equal(events, changeSet.Events())
	require.Equal([]byte("first"), changeSet.Events()[0].Data())
}
