package collector

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/topology"
)

// PathStretchCollector measures, per session, the ratio between the actual
// hop count traversed and the shortest-path hop count (spec §4.3).
type PathStretchCollector struct {
	view network.View
	cdf  bool

	receiver topology.NodeID
	source   topology.NodeID
	hasSource bool
	reqHops  int
	contHops int

	sessCount      int
	sumReqStretch  float64
	sumContStretch float64
	sumStretch     float64

	reqStretchData  []float64
	contStretchData []float64
	stretchData     []float64
}

// NewPathStretchCollector builds a collector over view. If cdf is true, the
// full per-session stretch sequences are retained.
func NewPathStretchCollector(view network.View, cdf bool) *PathStretchCollector {
	return &PathStretchCollector{view: view, cdf: cdf}
}

func (c *PathStretchCollector) Name() string { return "PATH_STRETCH" }

func (c *PathStretchCollector) Capabilities() EventMask {
	return EventStartSession | EventRequestHop | EventContentHop | EventEndSession
}

func (c *PathStretchCollector) StartSession(_ float64, receiver topology.NodeID, content cache.ContentID) {
	c.receiver = receiver
	c.source, c.hasSource = c.view.ContentSource(content)
	c.reqHops = 0
	c.contHops = 0
	c.sessCount++
}

func (c *PathStretchCollector) CacheHit(topology.NodeID)  {}
func (c *PathStretchCollector) ServerHit(topology.NodeID) {}

func (c *PathStretchCollector) RequestHop(_, _ topology.NodeID) { c.reqHops++ }
func (c *PathStretchCollector) ContentHop(_, _ topology.NodeID) { c.contHops++ }

func (c *PathStretchCollector) EndSession(success bool) {
	if !success || !c.hasSource {
		return
	}
	reqSPHops := hopLength(c.view, c.receiver, c.source)
	contSPHops := hopLength(c.view, c.source, c.receiver)
	if reqSPHops == 0 || contSPHops == 0 {
		return
	}
	reqStretch := float64(c.reqHops) / float64(reqSPHops)
	contStretch := float64(c.contHops) / float64(contSPHops)
	stretch := float64(c.reqHops+c.contHops) / float64(reqSPHops+contSPHops)
	c.sumReqStretch += reqStretch
	c.sumContStretch += contStretch
	c.sumStretch += stretch
	if c.cdf {
		c.reqStretchData = append(c.reqStretchData, reqStretch)
		c.contStretchData = append(c.contStretchData, contStretch)
		c.stretchData = append(c.stretchData, stretch)
	}
}

func (c *PathStretchCollector) Results() map[string]any {
	results := map[string]any{}
	if c.sessCount > 0 {
		results["MEAN"] = c.sumStretch / float64(c.sessCount)
		results["MEAN_REQUEST"] = c.sumReqStretch / float64(c.sessCount)
		results["MEAN_CONTENT"] = c.sumContStretch / float64(c.sessCount)
	}
	if c.cdf {
		results["CDF"] = empiricalCDF(c.stretchData)
		results["CDF_REQUEST"] = empiricalCDF(c.reqStretchData)
		results["CDF_CONTENT"] = empiricalCDF(c.contStretchData)
	}
	return results
}

// hopLength returns the hop count (edge count, not node count) of the
// shortest path from s to t, or 0 if no path exists. Stretch is a ratio of
// hop counts, so this must be len(path)-1, not len(path).
func hopLength(view network.View, s, t topology.NodeID) int {
	p, ok := view.ShortestPath(s, t)
	if !ok || len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
