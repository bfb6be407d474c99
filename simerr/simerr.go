// Package simerr defines the error taxonomy shared by the simulation core:
// configuration errors (fatal at construction), invariant errors (fatal at
// runtime) and trace-exhaustion errors. Transient per-session failures are
// not modeled as errors at all — they are the success=false value threaded
// through Controller.EndSession.
package simerr

import "fmt"

// ConfigError reports a problem detected while constructing a simulation
// component: a non-positive cache capacity, alpha <= 0, beta < 0, an unknown
// policy or workload identifier, or a requested content with no origin.
type ConfigError struct {
	Component string
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: configuration error: %s", e.Component, e.Reason)
}

// NewConfigError builds a ConfigError, mirroring the teacher repo's
// requireParam-style guard helpers that wrap a component name and reason.
func NewConfigError(component, format string, args ...any) *ConfigError {
	return &ConfigError{Component: component, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError reports a programming error raised during a running
// simulation: a nested start_session, get_content with no live session, or
// forwarding along a path whose endpoints the model doesn't know.
type InvariantError struct {
	Operation string
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Operation, e.Reason)
}

// NewInvariantError builds an InvariantError.
func NewInvariantError(operation, format string, args ...any) *InvariantError {
	return &InvariantError{Operation: operation, Reason: fmt.Sprintf(format, args...)}
}

// TraceExhaustionError reports that a trace-driven workload ran out of
// records before satisfying n_warmup + n_measured.
type TraceExhaustionError struct {
	Requested int
	Available int
}

func (e *TraceExhaustionError) Error() string {
	return fmt.Sprintf("trace exhausted: requested %d events, trace had %d", e.Requested, e.Available)
}

// NewTraceExhaustionError builds a TraceExhaustionError.
func NewTraceExhaustionError(requested, available int) *TraceExhaustionError {
	return &TraceExhaustionError{Requested: requested, Available: available}
}
