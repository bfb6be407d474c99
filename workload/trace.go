package workload

import (
	"math/rand"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simerr"
	"github.com/icnsim/icnsim/topology"
)

// TraceDrivenWorkload replays a fixed sequence of content records, assigning
// timestamps by the same Poisson process as StationaryWorkload and
// receivers by the same uniform/beta-weighted selection (spec §4.4).
type TraceDrivenWorkload struct {
	contents  []cache.ContentID
	receivers *receiverSelector
	rng       *rand.Rand

	rate      float64
	nWarmup   int
	nMeasured int

	reqCounter int
	pos        int
	tEvent     float64
}

// NewTraceDrivenWorkload builds a TraceDrivenWorkload over a pre-loaded
// content trace. rng must be the caller's workload-subsystem RNG.
func NewTraceDrivenWorkload(topo *topology.Topology, contents []cache.ContentID, nWarmup, nMeasured int, rate, beta float64, rng *rand.Rand) (*TraceDrivenWorkload, error) {
	receivers, err := newReceiverSelector(topo, beta)
	if err != nil {
		return nil, err
	}
	return &TraceDrivenWorkload{
		contents:  contents,
		receivers: receivers,
		rng:       rng,
		rate:      rate,
		nWarmup:   nWarmup,
		nMeasured: nMeasured,
	}, nil
}

func (w *TraceDrivenWorkload) Next() (float64, Event, bool, error) {
	if w.reqCounter >= w.nWarmup+w.nMeasured {
		return 0, Event{}, false, nil
	}
	if w.pos >= len(w.contents) {
		return 0, Event{}, false, simerr.NewTraceExhaustionError(w.nWarmup+w.nMeasured, w.pos)
	}
	w.tEvent += w.rng.ExpFloat64() / w.rate
	receiver := w.receivers.next(w.rng)
	content := w.contents[w.pos]
	log := w.reqCounter >= w.nWarmup
	w.pos++
	w.reqCounter++
	return w.tEvent, Event{Receiver: receiver, Content: content, Log: log}, true, nil
}

func (w *TraceDrivenWorkload) Contents() []cache.ContentID {
	out := make([]cache.ContentID, len(w.contents))
	copy(out, w.contents)
	return out
}
