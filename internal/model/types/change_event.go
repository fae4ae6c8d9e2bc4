package types

// ChangeEvent is the envelope collaborators publish for every committed
// mutation of a source record. Before and After hold the snapshots still
// encoded in the message's content type; an empty side means the record did
// not exist on that side of the mutation.
type ChangeEvent struct {
	EventID string
	Before  []byte
	After   []byte

	// CommittedAt is in microseconds since epoch.
	CommittedAt int64
}

func (e *ChangeEvent) HasBefore() bool { return len(e.Before) > 0 }

func (e *ChangeEvent) HasAfter() bool { return len(e.After) > 0 }
