package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/collector"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/simrng"
	"github.com/icnsim/icnsim/topology"
)

// s1Topology builds spec §8 scenario S1/S2's topology: nodes {0,1,2,3,4} on
// a line, source=4 with contents={1,2,3}, receiver=0, caches at {1,2,3}
// capacity 1, LRU, 2ms internal delay on every edge.
func s1Topology(t *testing.T) *network.Model {
	t.Helper()
	topo := topology.New(cache.LRU)
	topo.AddNode("0", topology.Stack{Kind: topology.StackReceiver})
	topo.AddNode("1", topology.Stack{Kind: topology.StackCache, CacheSize: 1})
	topo.AddNode("2", topology.Stack{Kind: topology.StackCache, CacheSize: 1})
	topo.AddNode("3", topology.Stack{Kind: topology.StackCache, CacheSize: 1})
	topo.AddNode("4", topology.Stack{Kind: topology.StackSource, Contents: []cache.ContentID{"1", "2", "3"}})
	nodes := []topology.NodeID{"0", "1", "2", "3", "4"}
	for i := 0; i+1 < len(nodes); i++ {
		require.NoError(t, topo.AddEdge(nodes[i], nodes[i+1], 2, topology.LinkInternal))
	}
	p := simrng.New(simrng.NewSimulationKey(11))
	m, err := network.NewModel(topo, p.ForSubsystem(simrng.SubsystemCacheEviction))
	require.NoError(t, err)
	return m
}

func TestLeaveCopyEverywhere_S1_SingleHitPath(t *testing.T) {
	m := s1Topology(t)
	ctrl := network.NewController(m)
	chr := collector.NewCacheHitRatioCollector(false)
	lat := collector.NewLatencyCollector(m, false)
	proxy := collector.NewProxy(m, chr, lat)
	ctrl.AttachCollector(proxy)

	strategy := NewLeaveCopyEverywhere()

	require.NoError(t, ctrl.StartSession(0, "0", "1", true))
	success, err := strategy.Run(ctrl, m, "0", "1")
	require.NoError(t, err)
	require.NoError(t, ctrl.EndSession(success))

	assert.True(t, success)
	assert.InDelta(t, 0.0, chr.Results()["MEAN"], 1e-9)
	assert.InDelta(t, 16.0, lat.Results()["MEAN"], 1e-9)

	for _, node := range []topology.NodeID{"1", "2", "3"} {
		locs := m.ContentLocations("1")
		assert.Contains(t, locs, node)
	}
}

func TestLeaveCopyEverywhere_S2_SubsequentCacheHit(t *testing.T) {
	m := s1Topology(t)
	ctrl := network.NewController(m)
	chr := collector.NewCacheHitRatioCollector(false)
	lat := collector.NewLatencyCollector(m, false)
	proxy := collector.NewProxy(m, chr, lat)
	ctrl.AttachCollector(proxy)

	strategy := NewLeaveCopyEverywhere()

	for i := 0; i < 2; i++ {
		require.NoError(t, ctrl.StartSession(float64(i), "0", "1", true))
		success, err := strategy.Run(ctrl, m, "0", "1")
		require.NoError(t, err)
		require.NoError(t, ctrl.EndSession(success))
	}

	assert.InDelta(t, 0.5, chr.Results()["MEAN"], 1e-9)
	assert.InDelta(t, 10.0, lat.Results()["MEAN"], 1e-9)
}
