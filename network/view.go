package network

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// View is the read-only façade over a Model: the only handle collectors and
// routing strategies are given (spec §3, §9 — "collectors and strategies
// cannot acquire the mutating handle"). *Model satisfies View. Its only
// exported mutating method is SymmetrifyPaths, which View does not include;
// cache, origin and session state are reachable for mutation only through
// Controller. Topology returns the live graph, not a copy.
type View interface {
	// ContentSource returns the node persistently holding content k.
	ContentSource(k cache.ContentID) (topology.NodeID, bool)

	// ContentLocations returns every node currently storing k: its
	// persistent origin plus any cache presently holding it.
	ContentLocations(k cache.ContentID) []topology.NodeID

	// ShortestPath returns the shortest path from s to t, endpoints
	// included.
	ShortestPath(s, t topology.NodeID) ([]topology.NodeID, bool)

	// LinkKind returns the kind of the directed edge (u, v).
	LinkKind(u, v topology.NodeID) (topology.LinkKind, bool)

	// LinkDelay returns the delay (ms) of the directed edge (u, v).
	LinkDelay(u, v topology.NodeID) (float64, bool)

	// Topology returns the underlying topology. The caller must not
	// mutate it; all mutation goes through Controller.
	Topology() *topology.Topology

	// CacheNodes returns every cache-carrying node mapped to its capacity.
	CacheNodes() map[topology.NodeID]int
}

func (m *Model) ContentSource(k cache.ContentID) (topology.NodeID, bool) {
	n, ok := m.contentSource[k]
	return n, ok
}

func (m *Model) ContentLocations(k cache.ContentID) []topology.NodeID {
	var locs []topology.NodeID
	seen := make(map[topology.NodeID]bool)
	for _, id := range m.topo.Nodes() {
		c, ok := m.caches[id]
		if !ok {
			continue
		}
		if c.Has(k) {
			locs = append(locs, id)
			seen[id] = true
		}
	}
	if src, ok := m.contentSource[k]; ok && !seen[src] {
		locs = append(locs, src)
	}
	return locs
}

func (m *Model) ShortestPath(s, t topology.NodeID) ([]topology.NodeID, bool) {
	row, ok := m.paths[s]
	if !ok {
		return nil, false
	}
	p, ok := row[t]
	return p, ok
}

func (m *Model) LinkKind(u, v topology.NodeID) (topology.LinkKind, bool) {
	return m.topo.EdgeKind(u, v)
}

func (m *Model) LinkDelay(u, v topology.NodeID) (float64, bool) {
	return m.topo.EdgeDelay(u, v)
}

func (m *Model) Topology() *topology.Topology {
	return m.topo
}

func (m *Model) CacheNodes() map[topology.NodeID]int {
	out := make(map[topology.NodeID]int, len(m.cacheCapacity))
	for id, size := range m.cacheCapacity {
		out[id] = size
	}
	return out
}
