// Package topology defines the attributed-graph contract the simulation
// core consumes from an external topology generator (spec §6): a graph
// whose nodes carry a stack tag and whose directed edges carry a delay and
// a kind. Topology itself is a thin, mutable graph wrapper; shortest-path
// computation lives in paths.go since it is a derived, recomputable view.
package topology

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simerr"
	"gonum.org/v1/gonum/graph/simple"
)

// NodeID identifies a topology node. Equality is total (spec §3).
type NodeID string

// StackKind names the role a node plays in the topology.
type StackKind string

// The four stack kinds the core recognizes (spec §6).
const (
	StackSource   StackKind = "source"
	StackReceiver StackKind = "receiver"
	StackRouter   StackKind = "router"
	StackCache    StackKind = "cache"
)

// LinkKind partitions edges into the caching network's internal links and
// its edges to origins/customers (spec §3).
type LinkKind string

const (
	LinkInternal LinkKind = "internal"
	LinkExternal LinkKind = "external"
)

// Stack describes what role a node plays, and the properties that role
// needs: a cache/router-with-cache_size node's capacity, or a source node's
// content list.
type Stack struct {
	Kind      StackKind
	CacheSize int               // meaningful for StackCache and StackRouter with a cache_size
	Contents  []cache.ContentID // meaningful for StackSource
}

type edgeKey struct {
	u, v NodeID
}

// Topology is an attributed graph: per-node stack tags, per-directed-edge
// delay and kind, and a graph-level cache replacement policy name.
type Topology struct {
	policy cache.Policy

	g *simple.WeightedUndirectedGraph

	ids     map[NodeID]int64
	names   map[int64]NodeID
	nextID  int64
	stacks  map[NodeID]Stack
	delay   map[edgeKey]float64
	kind    map[edgeKey]LinkKind
}

// New creates an empty Topology configured with the given cache replacement
// policy name.
func New(policy cache.Policy) *Topology {
	return &Topology{
		policy: policy,
		g:      simple.NewWeightedUndirectedGraph(0, 0),
		ids:    make(map[NodeID]int64),
		names:  make(map[int64]NodeID),
		stacks: make(map[NodeID]Stack),
		delay:  make(map[edgeKey]float64),
		kind:   make(map[edgeKey]LinkKind),
	}
}

// CachePolicy returns the graph-level cache replacement policy name.
func (t *Topology) CachePolicy() cache.Policy { return t.policy }

// AddNode registers a node with the given stack. Adding the same node twice
// overwrites its stack.
func (t *Topology) AddNode(id NodeID, stack Stack) {
	if _, ok := t.ids[id]; !ok {
		gid := t.nextID
		t.nextID++
		t.ids[id] = gid
		t.names[gid] = id
		t.g.AddNode(simple.Node(gid))
	}
	t.stacks[id] = stack
}

// AddEdge adds an undirected edge (u, v) with the given delay (ms) and kind.
// Both (u, v) and (v, u) carry the same delay and kind, matching spec §4.2's
// "each undirected edge yields two directed edges" rule — this model has no
// use for asymmetric per-direction delay, so the undirected graph already
// encodes that symmetry structurally.
func (t *Topology) AddEdge(u, v NodeID, delayMs float64, kind LinkKind) error {
	ui, ok := t.ids[u]
	if !ok {
		return simerr.NewConfigError("Topology.AddEdge", "unknown node %q", u)
	}
	vi, ok := t.ids[v]
	if !ok {
		return simerr.NewConfigError("Topology.AddEdge", "unknown node %q", v)
	}
	t.g.SetWeightedEdge(t.g.NewWeightedEdge(simple.Node(ui), simple.Node(vi), 1))
	t.delay[edgeKey{u, v}] = delayMs
	t.delay[edgeKey{v, u}] = delayMs
	t.kind[edgeKey{u, v}] = kind
	t.kind[edgeKey{v, u}] = kind
	return nil
}

// Nodes returns every node in the topology, in insertion order.
func (t *Topology) Nodes() []NodeID {
	out := make([]NodeID, 0, len(t.ids))
	for gid := int64(0); gid < t.nextID; gid++ {
		if name, ok := t.names[gid]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Stack returns the stack tag for node id.
func (t *Topology) Stack(id NodeID) (Stack, bool) {
	s, ok := t.stacks[id]
	return s, ok
}

// HasNode reports whether id is a known node.
func (t *Topology) HasNode(id NodeID) bool {
	_, ok := t.ids[id]
	return ok
}

// Neighbors returns the neighbors of id in insertion order.
func (t *Topology) Neighbors(id NodeID) []NodeID {
	gid, ok := t.ids[id]
	if !ok {
		return nil
	}
	it := t.g.From(gid)
	var neighborIDs []int64
	for it.Next() {
		neighborIDs = append(neighborIDs, it.Node().ID())
	}
	// Sort by graph ID (== insertion order) for determinism.
	for i := 1; i < len(neighborIDs); i++ {
		for j := i; j > 0 && neighborIDs[j] < neighborIDs[j-1]; j-- {
			neighborIDs[j], neighborIDs[j-1] = neighborIDs[j-1], neighborIDs[j]
		}
	}
	out := make([]NodeID, len(neighborIDs))
	for i, nid := range neighborIDs {
		out[i] = t.names[nid]
	}
	return out
}

// Degree returns the number of edges incident to id.
func (t *Topology) Degree(id NodeID) int {
	gid, ok := t.ids[id]
	if !ok {
		return 0
	}
	return t.g.From(gid).Len()
}

// EdgeDelay returns the delay (ms) of the directed edge (u, v).
func (t *Topology) EdgeDelay(u, v NodeID) (float64, bool) {
	d, ok := t.delay[edgeKey{u, v}]
	return d, ok
}

// EdgeKind returns the kind of the directed edge (u, v).
func (t *Topology) EdgeKind(u, v NodeID) (LinkKind, bool) {
	k, ok := t.kind[edgeKey{u, v}]
	return k, ok
}

// RemoveEdge removes the undirected edge (u, v), returning the removed
// delay and kind so the caller can restore it exactly later.
func (t *Topology) RemoveEdge(u, v NodeID) (delayMs float64, kind LinkKind, ok bool) {
	ui, uok := t.ids[u]
	vi, vok := t.ids[v]
	if !uok || !vok {
		return 0, "", false
	}
	delayMs, ok = t.delay[edgeKey{u, v}]
	if !ok {
		return 0, "", false
	}
	kind = t.kind[edgeKey{u, v}]
	t.g.RemoveEdge(ui, vi)
	delete(t.delay, edgeKey{u, v})
	delete(t.delay, edgeKey{v, u})
	delete(t.kind, edgeKey{u, v})
	delete(t.kind, edgeKey{v, u})
	return delayMs, kind, true
}

// RemoveNode removes node v and every incident edge, returning the removed
// stack and incident edges (for exact restoration).
type RemovedNode struct {
	Stack Stack
	Edges []RemovedEdge
}

// RemovedEdge records one edge incident to a removed node.
type RemovedEdge struct {
	Other NodeID
	Delay float64
	Kind  LinkKind
}

// RemoveNode removes v and all incident edges from the graph, preserving
// enough state for RestoreNode to reconstruct them exactly.
func (t *Topology) RemoveNode(v NodeID) (RemovedNode, bool) {
	gid, ok := t.ids[v]
	if !ok {
		return RemovedNode{}, false
	}
	removed := RemovedNode{Stack: t.stacks[v]}
	for _, n := range t.Neighbors(v) {
		delayMs, kind, _ := t.RemoveEdge(v, n)
		removed.Edges = append(removed.Edges, RemovedEdge{Other: n, Delay: delayMs, Kind: kind})
	}
	t.g.RemoveNode(gid)
	delete(t.ids, v)
	delete(t.names, gid)
	delete(t.stacks, v)
	return removed, true
}

// RestoreNode re-adds v with its prior stack and incident edges, as
// captured by a prior RemoveNode call.
func (t *Topology) RestoreNode(v NodeID, removed RemovedNode) error {
	t.AddNode(v, removed.Stack)
	for _, e := range removed.Edges {
		if err := t.AddEdge(v, e.Other, e.Delay, e.Kind); err != nil {
			return err
		}
	}
	return nil
}
