// Package engine owns the single memtable instance of a run. It is
// the explicit replacement for the shared global of naive designs:
// callers construct one Engine from config, share it by reference,
// and close it when the run ends.
package engine

import (
	"membuf/internal/config"
	"membuf/internal/filter"
	"membuf/internal/memtable"
)

// Engine is the facade handed to the HTTP layer and the workload
// harness. All methods are safe for concurrent use.
type Engine struct {
	table *memtable.Memtable
	conf  *config.Config
}

// Stats is a point-in-time occupancy snapshot.
type Stats struct {
	Len  int  `json:"len"`
	Cap  int  `json:"cap"`
	Full bool `json:"full"`
}

// New builds the table described by conf, attaching a bloom filter
// when the config enables one.
func New(conf *config.Config) (*Engine, error) {
	var (
		table *memtable.Memtable
		err   error
	)
	if conf.FilterEnabled {
		f := filter.NewBloom(conf.Capacity, conf.FilterBitsPerKey)
		table, err = memtable.NewWithFilter(conf.Capacity, f)
	} else {
		table, err = memtable.New(conf.Capacity)
	}
	if err != nil {
		return nil, err
	}
	return &Engine{table: table, conf: conf}, nil
}

// Put upserts a key. A full table is reported through the result, not
// through the error.
func (e *Engine) Put(key, value int64) (memtable.PutResult, error) {
	return e.table.Put(key, value)
}

// Get looks up a key.
func (e *Engine) Get(key int64) (int64, bool) {
	return e.table.Get(key)
}

// Stats reports current occupancy.
func (e *Engine) Stats() Stats {
	n := e.table.Len()
	return Stats{
		Len:  n,
		Cap:  e.table.Cap(),
		Full: n == e.table.Cap(),
	}
}

// Dump returns a snapshot of the live entries in slot order.
func (e *Engine) Dump() []memtable.Entry {
	return e.table.All()
}

// Close tears the table down. The engine must not be used afterwards.
func (e *Engine) Close() error {
	return e.table.Close()
}
