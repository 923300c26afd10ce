// Package memtable implements a fixed-capacity in-memory key-value
// buffer shared by concurrent writers and readers. A single
// reader-writer lock guards all entry state: lookups run in parallel,
// mutations are exclusive. The buffer never grows, never evicts, and
// never deletes; once every slot is occupied, writes of new keys are
// rejected until the owner tears the table down.
package memtable

// Entry is one occupied slot. Entries between index 0 and the table
// length are live; slots past the length are free.
type Entry struct {
	Key   int64
	Value int64
}

// PutResult classifies the outcome of a write. All three outcomes are
// normal operation, not errors.
type PutResult uint8

const (
	// PutInserted means the key was new and claimed a free slot.
	PutInserted PutResult = iota + 1
	// PutUpdated means an existing entry was overwritten in place.
	PutUpdated
	// PutRejected means the key was new but every slot was occupied.
	// The write had no effect; acting on rejection is caller policy.
	PutRejected
)

func (r PutResult) String() string {
	switch r {
	case PutInserted:
		return "inserted"
	case PutUpdated:
		return "updated"
	case PutRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
