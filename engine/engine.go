// Package engine implements the top-level loop of spec §4.6, binding a
// workload to a routing strategy driven against a network.Controller.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/icnsim/icnsim/network"
	"github.com/icnsim/icnsim/routing"
	"github.com/icnsim/icnsim/workload"
)

// Engine owns a Workload, a Strategy and a Controller, and drives one
// session per event: start_session, delegate to the strategy, end_session.
// Collectors are passive observers of whatever the strategy emits through
// the controller during that middle step.
type Engine struct {
	workload   workload.Workload
	controller *network.Controller
	view       network.View
	strategy   routing.Strategy

	eventsRun int
}

// New builds an Engine over wl, driving strategy against ctrl. view is the
// read-only façade the strategy consults for routing decisions (shortest
// paths, content locations) — the same Model ctrl mutates.
func New(wl workload.Workload, ctrl *network.Controller, view network.View, strategy routing.Strategy) *Engine {
	return &Engine{workload: wl, controller: ctrl, view: view, strategy: strategy}
}

// Run drains the workload to exhaustion, driving one session per event. It
// returns the first fatal error (configuration/invariant) surfaced by the
// controller or strategy; transient per-session failures are not errors —
// they are recorded as end_session(success=false) and the run continues.
func (e *Engine) Run() error {
	for {
		t, event, ok, err := e.workload.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := e.runSession(t, event); err != nil {
			return err
		}
		e.eventsRun++
	}
	logrus.Debugf("engine: run complete, %d sessions", e.eventsRun)
	return nil
}

func (e *Engine) runSession(t float64, event workload.Event) error {
	if err := e.controller.StartSession(t, event.Receiver, event.Content, event.Log); err != nil {
		return err
	}
	success, err := e.strategy.Run(e.controller, e.view, event.Receiver, event.Content)
	if err != nil {
		return err
	}
	return e.controller.EndSession(success)
}

// EventsRun returns the number of sessions driven so far.
func (e *Engine) EventsRun() int { return e.eventsRun }
