package topology

import (
	"bytes"
	"fmt"
	"os"

	"github.com/icnsim/icnsim/cache"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk YAML form of a Topology, used by tests to build
// reproducible topologies without repeating AddNode/AddEdge boilerplate in
// Go. Mirrors the teacher's WorkloadSpec/LoadWorkloadSpec convention (one
// YAML-tagged struct plus a LoadX loader with KnownFields enabled).
type Fixture struct {
	Policy cache.Policy  `yaml:"policy"`
	Nodes  []FixtureNode `yaml:"nodes"`
	Edges  []FixtureEdge `yaml:"edges"`
}

// FixtureNode is one node entry in a Fixture.
type FixtureNode struct {
	ID        NodeID            `yaml:"id"`
	Kind      StackKind         `yaml:"kind"`
	CacheSize int               `yaml:"cache_size,omitempty"`
	Contents  []cache.ContentID `yaml:"contents,omitempty"`
}

// FixtureEdge is one undirected edge entry in a Fixture.
type FixtureEdge struct {
	U     NodeID   `yaml:"u"`
	V     NodeID   `yaml:"v"`
	Delay float64  `yaml:"delay_ms"`
	Kind  LinkKind `yaml:"kind"`
}

// LoadFixture reads and parses a Fixture from path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topology fixture: %w", err)
	}
	var f Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing topology fixture: %w", err)
	}
	return &f, nil
}

// Build materializes the Fixture into a Topology.
func (f *Fixture) Build() (*Topology, error) {
	t := New(f.Policy)
	for _, n := range f.Nodes {
		t.AddNode(n.ID, Stack{Kind: n.Kind, CacheSize: n.CacheSize, Contents: n.Contents})
	}
	for _, e := range f.Edges {
		if err := t.AddEdge(e.U, e.V, e.Delay, e.Kind); err != nil {
			return nil, err
		}
	}
	return t, nil
}
