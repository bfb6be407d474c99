// Package network implements the network Model/View/Controller triad of
// spec §4.2: Model owns topology, cache and content-origin state; View is a
// read-only façade over it; Controller is the only type that may mutate it.
package network

import (
	"math/rand"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simerr"
	"github.com/icnsim/icnsim/topology"
)

// Model holds the internal state of the network: topology, all-pairs
// shortest paths, per-node caches and the content->origin map. Apart from
// SymmetrifyPaths, which rewrites the path table in place, only Controller
// mutates a Model; View exposes the read-only projections.
type Model struct {
	topo  *topology.Topology
	paths topology.PathTable

	caches        map[topology.NodeID]cache.Cache
	cacheCapacity map[topology.NodeID]int
	contentSource map[cache.ContentID]topology.NodeID

	// suspended holds caches removed from service by RemoveNode, keyed by
	// node, so RestoreNode can reinstate the exact same cache instance
	// (and therefore its residency) rather than rebuilding an empty one.
	suspended map[topology.NodeID]cache.Cache

	rng *rand.Rand
}

// NewModel builds a NetworkModel from a Topology: it instantiates one Cache
// per cache-carrying node (policy and sizes from the topology), records the
// content->origin map from every source node, and computes the all-pairs
// shortest-path table. rng seeds any RAND-policy caches; it may be nil if
// the topology's cache policy is not RAND.
func NewModel(topo *topology.Topology, rng *rand.Rand) (*Model, error) {
	m := &Model{
		topo:          topo,
		caches:        make(map[topology.NodeID]cache.Cache),
		cacheCapacity: make(map[topology.NodeID]int),
		contentSource: make(map[cache.ContentID]topology.NodeID),
		suspended:     make(map[topology.NodeID]cache.Cache),
		rng:           rng,
	}

	for _, id := range topo.Nodes() {
		stack, ok := topo.Stack(id)
		if !ok {
			continue
		}
		switch stack.Kind {
		case topology.StackCache:
			if err := m.addCache(topo, id, stack.CacheSize); err != nil {
				return nil, err
			}
		case topology.StackRouter:
			if stack.CacheSize > 0 {
				if err := m.addCache(topo, id, stack.CacheSize); err != nil {
					return nil, err
				}
			}
		case topology.StackSource:
			for _, content := range stack.Contents {
				if existing, ok := m.contentSource[content]; ok {
					return nil, simerr.NewConfigError("NewModel",
						"content %q has two origins: %q and %q", content, existing, id)
				}
				m.contentSource[content] = id
			}
		}
	}

	m.paths = topology.ComputeAllPairsShortestPaths(topo)
	return m, nil
}

func (m *Model) addCache(topo *topology.Topology, id topology.NodeID, size int) error {
	c, err := cache.New(topo.CachePolicy(), size, m.rng)
	if err != nil {
		return err
	}
	m.caches[id] = c
	m.cacheCapacity[id] = size
	return nil
}

// SymmetrifyPaths forces path(s,t) == reverse(path(t,s)) for every ordered
// pair (spec §4.2, property 4). Call after construction or after any
// topology mutation that recomputes paths.
func (m *Model) SymmetrifyPaths() {
	m.paths.Symmetrify()
}

// recomputePaths rebuilds the all-pairs shortest-path table from the
// current topology. Used after a link/node mutation that requests
// recomputation.
func (m *Model) recomputePaths() {
	m.paths = topology.ComputeAllPairsShortestPaths(m.topo)
}
