package network

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// EventSink receives session events from a Controller. collector.Proxy
// satisfies this interface structurally — network does not import collector
// so that collector (which needs network.View) never creates an import
// cycle back into network.
type EventSink interface {
	StartSession(timestamp float64, receiver topology.NodeID, content cache.ContentID)
	CacheHit(node topology.NodeID)
	ServerHit(node topology.NodeID)
	RequestHop(u, v topology.NodeID)
	ContentHop(u, v topology.NodeID)
	EndSession(success bool)
}

// nullSink discards every event. Used when no collector is attached.
type nullSink struct{}

func (nullSink) StartSession(float64, topology.NodeID, cache.ContentID) {}
func (nullSink) CacheHit(topology.NodeID)                               {}
func (nullSink) ServerHit(topology.NodeID)                              {}
func (nullSink) RequestHop(u, v topology.NodeID)                        {}
func (nullSink) ContentHop(u, v topology.NodeID)                        {}
func (nullSink) EndSession(bool)                                        {}
