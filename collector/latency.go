package collector

import (
	"sort"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/topology"
)

// LatencyCollector accumulates the per-session sum of link delay across
// request and content hops, and on a successful end_session adds it to a
// running mean (spec §4.3, property 7). Unsuccessful sessions are excluded.
type LatencyCollector struct {
	view network.View
	cdf  bool

	sessLatency float64
	totalLatency float64
	sessCount    int
	latencyData  []float64
}

// NewLatencyCollector builds a collector over view. If cdf is true, the
// full per-session latency sequence is retained to emit an empirical CDF.
func NewLatencyCollector(view network.View, cdf bool) *LatencyCollector {
	return &LatencyCollector{view: view, cdf: cdf}
}

func (c *LatencyCollector) Name() string { return "LATENCY" }

func (c *LatencyCollector) Capabilities() EventMask {
	return EventStartSession | EventRequestHop | EventContentHop | EventEndSession
}

func (c *LatencyCollector) StartSession(float64, topology.NodeID, cache.ContentID) {
	c.sessLatency = 0
}

func (c *LatencyCollector) CacheHit(topology.NodeID)  {}
func (c *LatencyCollector) ServerHit(topology.NodeID) {}

func (c *LatencyCollector) RequestHop(u, v topology.NodeID) {
	if d, ok := c.view.LinkDelay(u, v); ok {
		c.sessLatency += d
	}
}

func (c *LatencyCollector) ContentHop(u, v topology.NodeID) {
	if d, ok := c.view.LinkDelay(u, v); ok {
		c.sessLatency += d
	}
}

func (c *LatencyCollector) EndSession(success bool) {
	if !success {
		return
	}
	if c.cdf {
		c.latencyData = append(c.latencyData, c.sessLatency)
	}
	c.totalLatency += c.sessLatency
	c.sessCount++
}

func (c *LatencyCollector) Results() map[string]any {
	results := map[string]any{}
	if c.sessCount > 0 {
		results["MEAN"] = c.totalLatency / float64(c.sessCount)
	}
	if c.cdf {
		results["CDF"] = empiricalCDF(c.latencyData)
	}
	return results
}

// empiricalCDF returns samples sorted ascending, the same sort.Float64s
// convention the percentile helpers in the latency-metrics package use.
func empiricalCDF(samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	sort.Float64s(out)
	return out
}
