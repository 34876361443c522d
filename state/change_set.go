// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package state

// Write pairs a state key with the operation applied to it.
type Write struct {
	Key Key
	Op  WriteOp
}

// Event is a payload emitted during execution. Events have no identity
// beyond their position in the change set's event sequence.
type Event struct {
	data     []byte
	metadata []byte
}

func NewEvent(data []byte) Event {
	return Event{data: data}
}

func NewEventWithMetadata(data, metadata []byte) Event {
	return Event{data: data, metadata: metadata}
}

func (e Event) Data() []byte {
	return e.data
}

func (e Event) Metadata() ([]byte, bool) {
	return e.metadata, e.metadata != nil
}

// ChangeSet is the complete effect of executing one transaction: an ordered
// sequence of writes, at most one per key, and an ordered sequence of emitted
// events. It is produced once by execution and consumed once by validation;
// the orderings are part of the validation contract.
type ChangeSet struct {
	writes []Write
	events []Event
}

// NewChangeSet takes ownership of [writes] and [events]. The caller must not
// mutate them afterwards.
func NewChangeSet(writes []Write, events []Event) *ChangeSet {
	return &ChangeSet{
		writes: writes,
		events: events,
	}
}

// Writes returns the write sequence in change-set order. The returned slice
// must not be modified.
func (c *ChangeSet) Writes() []Write {
	return c.writes
}

// Events returns the event sequence in emission order. The returned slice
// must not be modified.
func (c *ChangeSet) Events() []Event {
	return c.events
}
