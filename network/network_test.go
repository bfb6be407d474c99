package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simrng"
	"github.com/icnsim/icnsim/topology"
)

// line5 builds the S1/S2 scenario topology: nodes {0,1,2,3,4} on a line,
// source=4 with contents={1,2,3}, receiver=0, caches at {1,2,3} capacity 1,
// LRU, 2ms internal delay on every edge.
func line5(t *testing.T) *topology.Topology {
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
	return topo
}

// newTestModel builds a Model over topo, deriving its cache-eviction RNG
// from a per-call SimulationKey rather than passing nil directly.
func newTestModel(t *testing.T, topo *topology.Topology, seed int64) (*Model, error) {
	t.Helper()
	p := simrng.New(simrng.NewSimulationKey(seed))
	return NewModel(topo, p.ForSubsystem(simrng.SubsystemCacheEviction))
}

func TestNewModel_RecordsContentOrigins(t *testing.T) {
	m, err := newTestModel(t, line5(t), 1)
	require.NoError(t, err)
	src, ok := m.ContentSource("1")
	require.True(t, ok)
	assert.Equal(t, topology.NodeID("4"), src)
}

func TestNewModel_RejectsDuplicateOrigin(t *testing.T) {
	topo := topology.New(cache.LRU)
	topo.AddNode("a", topology.Stack{Kind: topology.StackSource, Contents: []cache.ContentID{"x"}})
	topo.AddNode("b", topology.Stack{Kind: topology.StackSource, Contents: []cache.ContentID{"x"}})
	_, err := NewModel(topo, nil)
	assert.Error(t, err)
}

func TestContentLocations_IncludesOriginAndCaches(t *testing.T) {
	m, err := newTestModel(t, line5(t), 2)
	require.NoError(t, err)
	ctrl := NewController(m)
	require.NoError(t, ctrl.StartSession(0, "0", "1", false))
	require.NoError(t, ctrl.PutContent("1"))
	require.NoError(t, ctrl.EndSession(true))

	locs := m.ContentLocations("1")
	assert.Contains(t, locs, topology.NodeID("1"))
	assert.Contains(t, locs, topology.NodeID("4"))
}

func TestController_NestedStartSession_IsInvariantError(t *testing.T) {
	m, err := newTestModel(t, line5(t), 3)
	require.NoError(t, err)
	ctrl := NewController(m)
	require.NoError(t, ctrl.StartSession(0, "0", "1", true))
	err = ctrl.StartSession(1, "0", "2", true)
	assert.Error(t, err)
}

func TestController_GetContent_SessionLess_IsInvariantError(t *testing.T) {
	m, err := newTestModel(t, line5(t), 4)
	require.NoError(t, err)
	ctrl := NewController(m)
	_, err = ctrl.GetContent("4")
	assert.Error(t, err)
}

func TestController_GetContent_ServerHitAtOrigin(t *testing.T) {
	m, err := newTestModel(t, line5(t), 5)
	require.NoError(t, err)
	ctrl := NewController(m)
	require.NoError(t, ctrl.StartSession(0, "0", "1", true))
	hit, err := ctrl.GetContent("4")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestController_RemoveLink_ThenRestore_PreservesView(t *testing.T) {
	m, err := newTestModel(t, line5(t), 6)
	require.NoError(t, err)
	ctrl := NewController(m)

	beforePath, ok := m.ShortestPath("0", "4")
	require.True(t, ok)
	delay, kind, err := ctrl.RemoveLink("1", "2", true)
	require.NoError(t, err)

	_, stillConnected := m.ShortestPath("0", "4")
	assert.False(t, stillConnected, "removing the only (1,2) edge must disconnect 0 from 4")

	require.NoError(t, ctrl.RestoreLink("1", "2", delay, kind, true))
	afterPath, ok := m.ShortestPath("0", "4")
	require.True(t, ok)
	assert.Equal(t, beforePath, afterPath)
}

func TestController_RemoveNode_SuspendsCache_RestoreReinstatesResidency(t *testing.T) {
	m, err := newTestModel(t, line5(t), 7)
	require.NoError(t, err)
	ctrl := NewController(m)
	require.NoError(t, ctrl.StartSession(0, "0", "1", false))
	require.NoError(t, ctrl.PutContent("2"))
	require.NoError(t, ctrl.EndSession(true))

	removed, err := ctrl.RemoveNode("2")
	require.NoError(t, err)
	assert.False(t, m.Topology().HasNode("2"))

	require.NoError(t, ctrl.RestoreNode("2", removed))
	require.NoError(t, ctrl.StartSession(1, "0", "1", false))
	hit, err := ctrl.GetContent("2")
	require.NoError(t, err)
	assert.True(t, hit, "restored cache should retain its prior residency")
}
