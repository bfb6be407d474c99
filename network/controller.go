package network

import (
	"github.com/sirupsen/logrus"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simerr"
	"github.com/icnsim/icnsim/topology"
)

// Controller is the only type that may mutate a Model: session lifecycle,
// per-hop event emission, cache get/put, and topology mutation (spec
// §4.2). A View never grants these operations, even via type assertion.
type Controller struct {
	model *Model
	sink  EventSink
	sess  *session
}

// NewController wraps model. No collector is attached until AttachCollector
// is called; events are discarded until then.
func NewController(model *Model) *Controller {
	return &Controller{model: model, sink: nullSink{}}
}

// AttachCollector installs the single collector (typically a fan-out
// proxy) events are emitted to. Replaces any previously attached collector.
func (c *Controller) AttachCollector(sink EventSink) {
	c.sink = sink
}

// DetachCollector reverts to discarding events.
func (c *Controller) DetachCollector() {
	c.sink = nullSink{}
}

// StartSession opens a session. A second StartSession before EndSession is
// a programming error (spec §4.2 ordering contract).
func (c *Controller) StartSession(t float64, receiver topology.NodeID, content cache.ContentID, log bool) error {
	if c.sess != nil {
		return simerr.NewInvariantError("StartSession", "nested start_session: session for receiver %q content %q is still live", c.sess.receiver, c.sess.content)
	}
	c.sess = &session{timestamp: t, receiver: receiver, content: content, log: log}
	logrus.Debugf("[t=%07.3f] start_session receiver=%s content=%s", t, receiver, content)
	if log {
		c.sink.StartSession(t, receiver, content)
	}
	return nil
}

// requireSession returns the live session or an InvariantError naming op.
func (c *Controller) requireSession(op string) (*session, error) {
	if c.sess == nil {
		return nil, simerr.NewInvariantError(op, "no live session")
	}
	return c.sess, nil
}

// ForwardRequestHop emits a request_hop(u,v) event, gated by the session's
// log flag. It does not itself change model state.
func (c *Controller) ForwardRequestHop(u, v topology.NodeID) error {
	s, err := c.requireSession("ForwardRequestHop")
	if err != nil {
		return err
	}
	logrus.Debugf("[t=%07.3f] request_hop %s -> %s", s.timestamp, u, v)
	if s.log {
		c.sink.RequestHop(u, v)
	}
	return nil
}

// ForwardContentHop emits a content_hop(u,v) event, gated by the session's
// log flag. It does not itself change model state.
func (c *Controller) ForwardContentHop(u, v topology.NodeID) error {
	s, err := c.requireSession("ForwardContentHop")
	if err != nil {
		return err
	}
	logrus.Debugf("[t=%07.3f] content_hop %s -> %s", s.timestamp, u, v)
	if s.log {
		c.sink.ContentHop(u, v)
	}
	return nil
}

// ForwardRequestPath emits per-hop request events for each consecutive pair
// on path, defaulting to the precomputed shortest path from s to t.
func (c *Controller) ForwardRequestPath(s, t topology.NodeID, path []topology.NodeID) error {
	p, err := c.resolvePath("ForwardRequestPath", s, t, path)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(p); i++ {
		if err := c.ForwardRequestHop(p[i], p[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// ForwardContentPath emits per-hop content events for each consecutive pair
// on path, defaulting to the precomputed shortest path from s to t.
func (c *Controller) ForwardContentPath(s, t topology.NodeID, path []topology.NodeID) error {
	p, err := c.resolvePath("ForwardContentPath", s, t, path)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(p); i++ {
		if err := c.ForwardContentHop(p[i], p[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) resolvePath(op string, s, t topology.NodeID, path []topology.NodeID) ([]topology.NodeID, error) {
	if path != nil {
		return path, nil
	}
	p, ok := c.model.ShortestPath(s, t)
	if !ok {
		return nil, simerr.NewInvariantError(op, "no path from %q to %q", s, t)
	}
	return p, nil
}

// GetContent reports a cache hit at node (emitting cache_hit), a server hit
// if node is the session content's origin (emitting server_hit), or false.
// Emission is gated by the session's log flag. Calling this without a live
// session is an invariant violation.
func (c *Controller) GetContent(node topology.NodeID) (bool, error) {
	s, err := c.requireSession("GetContent")
	if err != nil {
		return false, err
	}
	if ch, ok := c.model.caches[node]; ok {
		if ch.Get(s.content) {
			logrus.Debugf("[t=%07.3f] cache_hit node=%s content=%s", s.timestamp, node, s.content)
			if s.log {
				c.sink.CacheHit(node)
			}
			return true, nil
		}
	}
	if src, ok := c.model.contentSource[s.content]; ok && src == node {
		logrus.Debugf("[t=%07.3f] server_hit node=%s content=%s", s.timestamp, node, s.content)
		if s.log {
			c.sink.ServerHit(node)
		}
		return true, nil
	}
	return false, nil
}

// PutContent inserts the session's content into node's cache via Cache.Put.
// Silent on nodes without a cache.
func (c *Controller) PutContent(node topology.NodeID) error {
	s, err := c.requireSession("PutContent")
	if err != nil {
		return err
	}
	if ch, ok := c.model.caches[node]; ok {
		ch.Put(s.content)
	}
	return nil
}

// EndSession emits end_session(success) and clears the live session.
func (c *Controller) EndSession(success bool) error {
	s, err := c.requireSession("EndSession")
	if err != nil {
		return err
	}
	logrus.Debugf("[t=%07.3f] end_session success=%v", s.timestamp, success)
	if s.log {
		c.sink.EndSession(success)
	}
	c.sess = nil
	return nil
}

// RemoveLink removes the undirected edge (u,v), optionally recomputing the
// shortest-path table. The returned state lets RestoreLink undo this exactly.
func (c *Controller) RemoveLink(u, v topology.NodeID, recomputePaths bool) (delayMs float64, kind topology.LinkKind, err error) {
	delayMs, kind, ok := c.model.topo.RemoveEdge(u, v)
	if !ok {
		return 0, "", simerr.NewInvariantError("RemoveLink", "no edge (%q,%q)", u, v)
	}
	logrus.Warnf("link removed: %s <-> %s (delay=%.3fms kind=%s)", u, v, delayMs, kind)
	if recomputePaths {
		c.model.recomputePaths()
	}
	return delayMs, kind, nil
}

// RestoreLink re-adds the undirected edge (u,v) with the delay and kind
// returned by a prior RemoveLink, optionally recomputing shortest paths.
func (c *Controller) RestoreLink(u, v topology.NodeID, delayMs float64, kind topology.LinkKind, recomputePaths bool) error {
	if err := c.model.topo.AddEdge(u, v, delayMs, kind); err != nil {
		return err
	}
	logrus.Debugf("link restored: %s <-> %s (delay=%.3fms kind=%s)", u, v, delayMs, kind)
	if recomputePaths {
		c.model.recomputePaths()
	}
	return nil
}

// RemoveNode removes v and all incident edges, suspending its cache (if
// any) from service. Shortest paths are always recomputed since removing a
// node necessarily changes connectivity.
func (c *Controller) RemoveNode(v topology.NodeID) (topology.RemovedNode, error) {
	removed, ok := c.model.topo.RemoveNode(v)
	if !ok {
		return topology.RemovedNode{}, simerr.NewInvariantError("RemoveNode", "unknown node %q", v)
	}
	if ch, ok := c.model.caches[v]; ok {
		c.model.suspended[v] = ch
		delete(c.model.caches, v)
		delete(c.model.cacheCapacity, v)
	}
	logrus.Warnf("node removed: %s (cache suspended=%v)", v, c.model.suspended[v] != nil)
	c.model.recomputePaths()
	return removed, nil
}

// RestoreNode re-adds v with its prior stack and incident edges, and
// reinstates its suspended cache (with its residency intact) if it had one.
func (c *Controller) RestoreNode(v topology.NodeID, removed topology.RemovedNode) error {
	if err := c.model.topo.RestoreNode(v, removed); err != nil {
		return err
	}
	if ch, ok := c.model.suspended[v]; ok {
		c.model.caches[v] = ch
		c.model.cacheCapacity[v] = ch.Capacity()
		delete(c.model.suspended, v)
	}
	logrus.Debugf("node restored: %s", v)
	c.model.recomputePaths()
	return nil
}

// RewireLink atomically disconnects u from oldPeer and connects u to
// newPeer with the given delay and kind, optionally recomputing shortest
// paths. It is a composition of RemoveLink and AddEdge rather than a
// distinct graph primitive: the reference simulator left link rewiring
// unimplemented, so there is no prior edge behavior to match exactly.
func (c *Controller) RewireLink(u, oldPeer, newPeer topology.NodeID, delayMs float64, kind topology.LinkKind, recomputePaths bool) error {
	if !c.model.topo.HasNode(newPeer) {
		return simerr.NewInvariantError("RewireLink", "unknown node %q", newPeer)
	}
	if _, _, err := c.RemoveLink(u, oldPeer, false); err != nil {
		return err
	}
	if err := c.model.topo.AddEdge(u, newPeer, delayMs, kind); err != nil {
		return err
	}
	logrus.Warnf("link rewired: %s moved from %s to %s (delay=%.3fms kind=%s)", u, oldPeer, newPeer, delayMs, kind)
	if recomputePaths {
		c.model.recomputePaths()
	}
	return nil
}
