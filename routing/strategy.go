// Package routing implements the pluggable routing/caching strategy
// collaborator of spec §4.6: the engine owns one Strategy and calls it once
// per session, and the strategy's only contract is to drive
// forward_*/get_content/put_content against a network.Controller.
package routing

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/topology"
)

// Strategy routes one session's request and content delivery. It must be
// stateless with respect to sessions — all per-session state lives in the
// Controller (spec §4.6) — so a Strategy value may be reused across every
// session the engine drives.
type Strategy interface {
	// Run drives one session to completion against ctrl (already holding a
	// live session for receiver/content) and returns whether it succeeded.
	// A non-nil error is a fatal condition that terminates the run; a
	// false, nil result is a transient per-session failure.
	Run(ctrl *network.Controller, view network.View, receiver topology.NodeID, content cache.ContentID) (success bool, err error)
}
