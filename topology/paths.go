package topology

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

// PathTable is an all-pairs shortest-path table: PathTable[s][t] is the
// ordered list of nodes on the shortest path from s to t, endpoints
// included. A missing entry means s and t are not connected.
type PathTable map[NodeID]map[NodeID][]NodeID

// ComputeAllPairsShortestPaths computes unweighted (hop-count) shortest
// paths over every pair of nodes in t, using Dijkstra over a graph whose
// edges all carry weight 1 — equivalent to breadth-first search, matching
// the reference implementation's use of an unweighted
// networkx.all_pairs_shortest_path rather than a delay-weighted path.
func ComputeAllPairsShortestPaths(t *Topology) PathTable {
	all := path.DijkstraAllPaths(t.g)
	nodes := t.Nodes()

	table := make(PathTable, len(nodes))
	for _, s := range nodes {
		table[s] = make(map[NodeID][]NodeID, len(nodes))
		table[s][s] = []NodeID{s}
		sid := t.ids[s]
		for _, d := range nodes {
			if d == s {
				continue
			}
			did := t.ids[d]
			nodesOnPath, _, unique := all.Between(sid, did)
			if len(nodesOnPath) == 0 {
				continue // s and d are not connected
			}
			_ = unique // tie-breaking among equal-length paths is arbitrary by design
			table[s][d] = nodesToIDs(t, nodesOnPath)
		}
	}
	return table
}

func nodesToIDs(t *Topology, nodes []graph.Node) []NodeID {
	out := make([]NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = t.names[n.ID()]
	}
	return out
}

// Symmetrify forces path(s,t) == reverse(path(t,s)) for every ordered pair,
// eliminating asymmetry introduced by arbitrary tie-breaking among
// equal-length shortest paths (spec §4.2, property 4). It rewrites every
// table[t][s] as the reverse of table[s][t], visiting each unordered pair
// once. The outer traversal walks a sorted copy of the table's source IDs and
// the inner one a sorted copy of each row's destination IDs, rather than
// ranging the maps directly: table and its rows are plain
// Go maps, so ranging them would make the winning direction depend on Go's
// randomized map iteration order — the same run could pick a different
// canonical direction on two executions with an identical seed, topology
// and params. Sorting pins "smaller NodeID wins ties" as the deterministic
// rule.
func (table PathTable) Symmetrify() {
	keys := make([]NodeID, 0, len(table))
	for s := range table {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	seen := make(map[[2]NodeID]bool)
	for _, s := range keys {
		row := table[s]
		dests := make([]NodeID, 0, len(row))
		for d := range row {
			dests = append(dests, d)
		}
		sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
		for _, d := range dests {
			if s == d {
				continue
			}
			p, ok := row[d]
			if !ok {
				continue
			}
			key := [2]NodeID{s, d}
			revKey := [2]NodeID{d, s}
			if seen[key] || seen[revKey] {
				continue
			}
			seen[key] = true
			reversed := make([]NodeID, len(p))
			for i, n := range p {
				reversed[len(p)-1-i] = n
			}
			if table[d] == nil {
				table[d] = make(map[NodeID][]NodeID)
			}
			table[d][s] = reversed
		}
	}
}
