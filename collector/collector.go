// Package collector implements the DataCollector pipeline of spec §4.3: a
// common interface, a fan-out Proxy, and the four concrete collectors
// (cache-hit ratio, latency, path stretch, link load) plus a TestCollector
// used only by tests.
package collector

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/topology"
)

// EventMask is a bitmask of session event kinds a collector subscribes to.
// Proxy uses it to build per-event dispatch lists at construction time —
// no reflection, no introspection on the hot path (spec §9 design note).
type EventMask uint8

const (
	EventStartSession EventMask = 1 << iota
	EventCacheHit
	EventServerHit
	EventRequestHop
	EventContentHop
	EventEndSession
)

// AllEvents is the full subscription mask, for collectors (like
// TestCollector) that care about every event kind.
const AllEvents = EventStartSession | EventCacheHit | EventServerHit |
	EventRequestHop | EventContentHop | EventEndSession

// Collector observes session events reported by a network.Controller and
// accumulates metrics over a read-only View. Every method is called only
// when the collector's Capabilities() mask includes that event kind.
type Collector interface {
	// Name identifies this collector in a Proxy's aggregated Results.
	Name() string

	// Capabilities returns the event kinds this collector subscribes to.
	Capabilities() EventMask

	StartSession(timestamp float64, receiver topology.NodeID, content cache.ContentID)
	CacheHit(node topology.NodeID)
	ServerHit(node topology.NodeID)
	RequestHop(u, v topology.NodeID)
	ContentHop(u, v topology.NodeID)
	EndSession(success bool)

	// Results returns the aggregated metrics this collector has measured,
	// keyed by the uppercase short names of spec §6 (MEAN, CDF, ...).
	Results() map[string]any
}

// Proxy fans session events out to exactly the collectors that subscribed
// to each event kind.
type Proxy struct {
	view       network.View
	collectors []Collector

	onStart   []Collector
	onCache   []Collector
	onServer  []Collector
	onReqHop  []Collector
	onContHop []Collector
	onEnd     []Collector
}

// NewProxy builds a Proxy over view, dispatching to collectors according to
// each collector's declared Capabilities.
func NewProxy(view network.View, collectors ...Collector) *Proxy {
	p := &Proxy{view: view, collectors: collectors}
	for _, c := range collectors {
		caps := c.Capabilities()
		if caps&EventStartSession != 0 {
			p.onStart = append(p.onStart, c)
		}
		if caps&EventCacheHit != 0 {
			p.onCache = append(p.onCache, c)
		}
		if caps&EventServerHit != 0 {
			p.onServer = append(p.onServer, c)
		}
		if caps&EventRequestHop != 0 {
			p.onReqHop = append(p.onReqHop, c)
		}
		if caps&EventContentHop != 0 {
			p.onContHop = append(p.onContHop, c)
		}
		if caps&EventEndSession != 0 {
			p.onEnd = append(p.onEnd, c)
		}
	}
	return p
}

func (p *Proxy) StartSession(timestamp float64, receiver topology.NodeID, content cache.ContentID) {
	for _, c := range p.onStart {
		c.StartSession(timestamp, receiver, content)
	}
}

func (p *Proxy) CacheHit(node topology.NodeID) {
	for _, c := range p.onCache {
		c.CacheHit(node)
	}
}

func (p *Proxy) ServerHit(node topology.NodeID) {
	for _, c := range p.onServer {
		c.ServerHit(node)
	}
}

func (p *Proxy) RequestHop(u, v topology.NodeID) {
	for _, c := range p.onReqHop {
		c.RequestHop(u, v)
	}
}

func (p *Proxy) ContentHop(u, v topology.NodeID) {
	for _, c := range p.onContHop {
		c.ContentHop(u, v)
	}
}

func (p *Proxy) EndSession(success bool) {
	for _, c := range p.onEnd {
		c.EndSession(success)
	}
}

// Results returns each collector's results, keyed by its Name.
func (p *Proxy) Results() map[string]map[string]any {
	out := make(map[string]map[string]any, len(p.collectors))
	for _, c := range p.collectors {
		out[c.Name()] = c.Results()
	}
	return out
}
