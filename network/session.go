package network

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// session is the single live session a Controller may hold at a time
// (spec §4.2: "Session | (timestamp, receiver, content, log_flag) | at
// most one live session per controller").
type session struct {
	timestamp float64
	receiver  topology.NodeID
	content   cache.ContentID
	log       bool
}
