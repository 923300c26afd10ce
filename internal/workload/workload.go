// Package workload drives one shared memtable with pools of writer
// and reader goroutines and verifies what comes back. It stands in
// for ad-hoc thread demos: goroutines rendezvous on a start barrier
// instead of sleeping, and every lookup hit is checked against the
// value derivation, so a torn or stale read is counted, not missed.
package workload

import (
	"sync"
	"sync/atomic"

	"github.com/twmb/murmur3"

	"membuf/internal/memtable"
	"membuf/pkg/utils"
)

// Config shapes one run. Writers each own a disjoint key range;
// readers probe the union of all writer ranges.
type Config struct {
	Writers       int
	Readers       int
	KeysPerWriter int
	// LookupsPerReader defaults to Writers*KeysPerWriter when zero.
	LookupsPerReader int
}

// Stats aggregates operation outcomes across all workers.
type Stats struct {
	Inserted atomic.Uint64
	Updated  atomic.Uint64
	Rejected atomic.Uint64
	Hits     atomic.Uint64
	Misses   atomic.Uint64
	// Corrupt counts hits whose value did not match the derivation.
	// Any nonzero value means the table returned a torn or foreign
	// entry.
	Corrupt atomic.Uint64
}

// ValueFor derives the value written for a key. Readers recompute it
// to verify hits.
func ValueFor(key int64) int64 {
	return int64(murmur3.Sum64(utils.KeyBytes(key)))
}

// WriterKey maps (writer id, sequence) to a key. Ranges are disjoint
// across writers, mirroring the id*stride scheme of typical demos.
func WriterKey(id, i int) int64 {
	return int64(id)*1_000_000 + int64(i)
}

// Run executes the configured workload against table and returns the
// aggregated stats. All workers start together on an internal barrier
// and Run returns only after every worker finishes.
func Run(table *memtable.Memtable, conf Config) *Stats {
	stats := &Stats{}
	lookups := conf.LookupsPerReader
	if lookups == 0 {
		lookups = conf.Writers * conf.KeysPerWriter
	}

	start := make(chan struct{})
	var wg sync.WaitGroup

	for id := 0; id < conf.Writers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			runWriter(table, stats, id, conf.KeysPerWriter)
		}(id)
	}

	for id := 0; id < conf.Readers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			runReader(table, stats, conf, id, lookups)
		}(id)
	}

	close(start)
	wg.Wait()
	return stats
}

func runWriter(table *memtable.Memtable, stats *Stats, id, keys int) {
	for i := 0; i < keys; i++ {
		key := WriterKey(id, i)
		res, err := table.Put(key, ValueFor(key))
		if err != nil {
			// Closed mid-run; nothing left to do.
			return
		}
		switch res {
		case memtable.PutInserted:
			stats.Inserted.Add(1)
		case memtable.PutUpdated:
			stats.Updated.Add(1)
		case memtable.PutRejected:
			stats.Rejected.Add(1)
		}
	}
}

func runReader(table *memtable.Memtable, stats *Stats, conf Config, id, lookups int) {
	writers, keys := conf.Writers, conf.KeysPerWriter
	if writers < 1 {
		writers = 1
	}
	if keys < 1 {
		keys = 1
	}
	for i := 0; i < lookups; i++ {
		// Walk the writers' key space, offset per reader so the
		// readers do not probe in lockstep.
		writer := (i + id) % writers
		key := WriterKey(writer, (i+id)/writers%keys)

		value, ok := table.Get(key)
		if !ok {
			// The writer may simply not have reached this key yet.
			stats.Misses.Add(1)
			continue
		}
		if value != ValueFor(key) {
			stats.Corrupt.Add(1)
			continue
		}
		stats.Hits.Add(1)
	}
}
