package workload

import (
	"math/rand"

	"github.com/icnsim/icnsim/simerr"
	"github.com/icnsim/icnsim/statdist"
	"github.com/icnsim/icnsim/topology"
)

// selectReceivers returns every node whose stack tag is "receiver", in
// topology insertion order.
func selectReceivers(topo *topology.Topology) []topology.NodeID {
	var out []topology.NodeID
	for _, id := range topo.Nodes() {
		stack, ok := topo.Stack(id)
		if ok && stack.Kind == topology.StackReceiver {
			out = append(out, id)
		}
	}
	return out
}

// sortReceiversByPoPDegree stably sorts receivers in descending order of the
// degree of their single attached point-of-presence. A receiver's own
// degree is assumed to always be 1 (it has exactly one neighbor); "PoP
// degree" means that neighbor's degree, not the receiver's — a subtlety the
// distilled contract leaves implicit but the reference implementation
// encodes directly (degree[iter(topology.adj[x]).next()]).
func sortReceiversByPoPDegree(topo *topology.Topology, receivers []topology.NodeID) []topology.NodeID {
	out := make([]topology.NodeID, len(receivers))
	copy(out, receivers)
	popDegree := make(map[topology.NodeID]int, len(out))
	for _, r := range out {
		neighbors := topo.Neighbors(r)
		if len(neighbors) == 0 {
			popDegree[r] = 0
			continue
		}
		popDegree[r] = topo.Degree(neighbors[0])
	}
	// Stable insertion sort, descending by PoP degree — matches Python's
	// sorted(..., reverse=True), which is stable.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && popDegree[out[j]] > popDegree[out[j-1]]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// receiverSelector draws a receiver index from receivers: uniform if
// dist is nil (beta==0), else a truncated-Zipf draw over the
// PoP-degree-sorted ordering.
type receiverSelector struct {
	receivers []topology.NodeID
	dist      *statdist.TruncatedZipfDist
}

func newReceiverSelector(topo *topology.Topology, beta float64) (*receiverSelector, error) {
	if beta < 0 {
		return nil, simerr.NewConfigError("workload", "beta must be non-negative, got %v", beta)
	}
	receivers := selectReceivers(topo)
	if beta == 0 {
		return &receiverSelector{receivers: receivers}, nil
	}
	receivers = sortReceiversByPoPDegree(topo, receivers)
	dist, err := statdist.NewTruncatedZipfDist(beta, len(receivers))
	if err != nil {
		return nil, err
	}
	return &receiverSelector{receivers: receivers, dist: dist}, nil
}

func (s *receiverSelector) next(rng *rand.Rand) topology.NodeID {
	if s.dist == nil {
		return s.receivers[rng.Intn(len(s.receivers))]
	}
	return s.receivers[s.dist.Sample(rng)-1]
}
