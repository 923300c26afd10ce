// Concurrent load and verification demo for the membuf table.
//
// Spawns pools of writer and reader goroutines against one shared
// table, checks every hit against the value derivation, and prints
// the outcome counters plus a dump of the final table contents.
//
// Usage: go run ./cmd/membuf-bench [flags]
package main

import (
	"flag"
	"time"

	"membuf/internal/config"
	"membuf/internal/filter"
	"membuf/internal/memtable"
	"membuf/internal/workload"
	"membuf/pkg/logger"
)

var (
	capacity      = flag.Int("capacity", config.DefaultCapacity, "table slot count")
	writers       = flag.Int("writers", 2, "number of writer goroutines")
	readers       = flag.Int("readers", 2, "number of reader goroutines")
	keysPerWriter = flag.Int("keys-per-writer", 25, "keys each writer upserts")
	lookups       = flag.Int("lookups", 0, "lookups per reader (0 = one pass over the key space)")
	useFilter     = flag.Bool("filter", true, "attach a bloom filter to the table")
	dump          = flag.Bool("dump", true, "print the final table contents")
	logLevel      = flag.String("log-level", "info", "log level")
)

func main() {
	flag.Parse()
	logger.InitLogger(*logLevel, "")
	defer logger.Sync()

	table, err := newTable()
	if err != nil {
		logger.Fatal("failed to build table", "error", err)
	}
	defer table.Close()

	logger.Info("starting workload",
		"capacity", *capacity,
		"writers", *writers,
		"readers", *readers,
		"keys_per_writer", *keysPerWriter,
		"filter", *useFilter,
	)

	started := time.Now()
	stats := workload.Run(table, workload.Config{
		Writers:          *writers,
		Readers:          *readers,
		KeysPerWriter:    *keysPerWriter,
		LookupsPerReader: *lookups,
	})
	elapsed := time.Since(started)

	logger.Info("workload finished",
		"elapsed", elapsed,
		"inserted", stats.Inserted.Load(),
		"updated", stats.Updated.Load(),
		"rejected", stats.Rejected.Load(),
		"hits", stats.Hits.Load(),
		"misses", stats.Misses.Load(),
		"corrupt", stats.Corrupt.Load(),
		"occupied", table.Len(),
	)

	if stats.Corrupt.Load() > 0 {
		logger.Fatal("verification failed: corrupt reads observed",
			"corrupt", stats.Corrupt.Load())
	}

	if *dump {
		for i, e := range table.All() {
			logger.Info("entry", "slot", i, "key", e.Key, "value", e.Value)
		}
	}
}

func newTable() (*memtable.Memtable, error) {
	if *useFilter {
		f := filter.NewBloom(*capacity, filter.DefaultBitsPerKey)
		return memtable.NewWithFilter(*capacity, f)
	}
	return memtable.New(*capacity)
}
