package routing

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/topology"
)

// LeaveCopyEverywhere forwards a request hop-by-hop along the shortest path
// from receiver to the content's origin, stopping at the first node whose
// get_content hits (cache or origin), then forwards the content back along
// the same path in reverse, putting a copy at every cache node on the
// return leg before the receiver.
type LeaveCopyEverywhere struct{}

// NewLeaveCopyEverywhere builds a LeaveCopyEverywhere strategy.
func NewLeaveCopyEverywhere() *LeaveCopyEverywhere { return &LeaveCopyEverywhere{} }

func (LeaveCopyEverywhere) Run(ctrl *network.Controller, view network.View, receiver topology.NodeID, content cache.ContentID) (bool, error) {
	source, ok := view.ContentSource(content)
	if !ok {
		return false, nil
	}
	path, ok := view.ShortestPath(receiver, source)
	if !ok {
		return false, nil
	}

	hitIndex := -1
	for i, node := range path {
		if i > 0 {
			if err := ctrl.ForwardRequestHop(path[i-1], path[i]); err != nil {
				return false, err
			}
		}
		hit, err := ctrl.GetContent(node)
		if err != nil {
			return false, err
		}
		if hit {
			hitIndex = i
			break
		}
	}
	if hitIndex < 0 {
		return false, nil
	}

	returnPath := reversePath(path[:hitIndex+1])
	for i := 0; i+1 < len(returnPath); i++ {
		if err := ctrl.ForwardContentHop(returnPath[i], returnPath[i+1]); err != nil {
			return false, err
		}
	}
	for i := 1; i < len(returnPath); i++ {
		if err := ctrl.PutContent(returnPath[i]); err != nil {
			return false, err
		}
	}
	return true, nil
}

func reversePath(path []topology.NodeID) []topology.NodeID {
	out := make([]topology.NodeID, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}
	return out
}
