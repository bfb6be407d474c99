// Package workload implements the event-generating engines of spec §4.4: a
// stationary IRM/Zipf workload, a trace-driven workload and a YCSB
// benchmark workload, all sharing one (timestamp, Event) pull contract.
package workload

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// Event is one workload-issued request.
type Event struct {
	Receiver topology.NodeID
	Content  cache.ContentID
	Log      bool

	// Op is set only by YCSBWorkload ("READ" or "UPDATE"); empty otherwise.
	Op string
}

// Workload is a finite pull-style event source: repeated calls to Next
// return successive (timestamp, Event) pairs until the workload is
// exhausted. This is expressed as an explicit pull iterator rather than a
// goroutine/channel generator since the engine drives it synchronously and
// single-threaded (spec §5) — there is no producer to run concurrently.
type Workload interface {
	// Next returns the next event, or ok=false once the workload has
	// produced n_warmup+n_measured events.
	Next() (timestamp float64, event Event, ok bool, err error)

	// Contents returns every content identifier this workload can produce,
	// needed by a content-placement collaborator (spec §6).
	Contents() []cache.ContentID
}
