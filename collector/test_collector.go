package collector

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// TestCollector records the raw event stream verbatim, for use in tests
// that assert on exact event ordering rather than aggregated metrics
// (ported from the reference simulator's test-only collector).
type TestCollector struct {
	Events []TestEvent
}

// TestEventKind names the kind of a recorded TestEvent.
type TestEventKind string

const (
	TestEventStartSession TestEventKind = "start_session"
	TestEventCacheHit     TestEventKind = "cache_hit"
	TestEventServerHit    TestEventKind = "server_hit"
	TestEventRequestHop   TestEventKind = "request_hop"
	TestEventContentHop   TestEventKind = "content_hop"
	TestEventEndSession   TestEventKind = "end_session"
)

// TestEvent is one recorded call into TestCollector.
type TestEvent struct {
	Kind      TestEventKind
	Timestamp float64
	Receiver  topology.NodeID
	Content   cache.ContentID
	Node      topology.NodeID
	U, V      topology.NodeID
	Success   bool
}

// NewTestCollector builds an empty TestCollector.
func NewTestCollector() *TestCollector {
	return &TestCollector{}
}

func (c *TestCollector) Name() string { return "TEST" }

func (c *TestCollector) Capabilities() EventMask { return AllEvents }

func (c *TestCollector) StartSession(timestamp float64, receiver topology.NodeID, content cache.ContentID) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventStartSession, Timestamp: timestamp, Receiver: receiver, Content: content})
}

func (c *TestCollector) CacheHit(node topology.NodeID) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventCacheHit, Node: node})
}

func (c *TestCollector) ServerHit(node topology.NodeID) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventServerHit, Node: node})
}

func (c *TestCollector) RequestHop(u, v topology.NodeID) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventRequestHop, U: u, V: v})
}

func (c *TestCollector) ContentHop(u, v topology.NodeID) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventContentHop, U: u, V: v})
}

func (c *TestCollector) EndSession(success bool) {
	c.Events = append(c.Events, TestEvent{Kind: TestEventEndSession, Success: success})
}

// Results returns the count of each event kind recorded, keyed by the
// lowercase TestEventKind name (e.g. "request_hop") rather than an uppercase
// metric name.
func (c *TestCollector) Results() map[string]any {
	counts := make(map[TestEventKind]int)
	for _, e := range c.Events {
		counts[e.Kind]++
	}
	out := make(map[string]any, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}
