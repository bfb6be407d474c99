package workload

import (
	"math/rand"
	"strconv"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/statdist"
	"github.com/icnsim/icnsim/topology"
)

// StationaryWorkload is the IRM workload of spec §4.4: Poisson
// inter-arrivals at rate, content drawn from a truncated Zipf of
// parameter alpha over {1..nContents}, receivers chosen uniformly (beta=0)
// or by a PoP-degree-weighted Zipf of parameter beta.
type StationaryWorkload struct {
	receivers *receiverSelector
	zipf      *statdist.TruncatedZipfDist
	rng       *rand.Rand

	nContents int
	rate      float64
	nWarmup   int
	nMeasured int

	reqCounter int
	tEvent     float64
}

// NewStationaryWorkload builds a StationaryWorkload over topo. rng must be
// the caller's workload-subsystem RNG (simrng.SubsystemWorkload) so that two
// runs with the same master seed emit identical event streams.
func NewStationaryWorkload(topo *topology.Topology, nContents int, alpha, beta, rate float64, nWarmup, nMeasured int, rng *rand.Rand) (*StationaryWorkload, error) {
	zipf, err := statdist.NewTruncatedZipfDist(alpha, nContents)
	if err != nil {
		return nil, err
	}
	receivers, err := newReceiverSelector(topo, beta)
	if err != nil {
		return nil, err
	}
	return &StationaryWorkload{
		receivers: receivers,
		zipf:      zipf,
		rng:       rng,
		nContents: nContents,
		rate:      rate,
		nWarmup:   nWarmup,
		nMeasured: nMeasured,
	}, nil
}

func (w *StationaryWorkload) Next() (float64, Event, bool, error) {
	if w.reqCounter >= w.nWarmup+w.nMeasured {
		return 0, Event{}, false, nil
	}
	// Draw order — inter-arrival, then receiver, then content — matches the
	// reference generator exactly, so the same master seed reproduces the
	// same stream regardless of which subsystems a run happens to touch.
	w.tEvent += w.rng.ExpFloat64() / w.rate
	receiver := w.receivers.next(w.rng)
	content := cache.ContentID(strconv.Itoa(w.zipf.Sample(w.rng)))
	log := w.reqCounter >= w.nWarmup
	w.reqCounter++
	return w.tEvent, Event{Receiver: receiver, Content: content, Log: log}, true, nil
}

func (w *StationaryWorkload) Contents() []cache.ContentID {
	out := make([]cache.ContentID, w.nContents)
	for i := 0; i < w.nContents; i++ {
		out[i] = cache.ContentID(strconv.Itoa(i + 1))
	}
	return out
}
