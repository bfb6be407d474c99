package workload

import (
	"math/rand"
	"strconv"

	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/simerr"
	"github.com/icnsim/icnsim/statdist"
	"github.com/icnsim/icnsim/topology"
)

// YCSBVariant names one of the Yahoo! Cloud Serving Benchmark's workloads.
type YCSBVariant string

const (
	YCSBWorkloadA YCSBVariant = "A" // update heavy: 50% read, 50% update
	YCSBWorkloadB YCSBVariant = "B" // read heavy: 95% read, 5% update
	YCSBWorkloadC YCSBVariant = "C" // read only
	YCSBWorkloadD YCSBVariant = "D" // read latest — not yet implemented
	YCSBWorkloadE YCSBVariant = "E" // short ranges — not yet implemented
)

// readCutoff is the P(read) threshold each implemented variant compares a
// uniform draw against, matching the reference benchmark's op mix.
var readCutoff = map[YCSBVariant]float64{
	YCSBWorkloadA: 0.5,
	YCSBWorkloadB: 0.95,
	YCSBWorkloadC: 1.0,
}

// YCSBWorkload drives the cache with the YCSB A/B/C record-selection and
// op-mix benchmarks (spec §4.4, §7). D and E are declared but not
// implemented, matching the reference implementation.
type YCSBWorkload struct {
	variant   YCSBVariant
	zipf      *statdist.TruncatedZipfDist
	receivers *receiverSelector
	rng       *rand.Rand

	nWarmup   int
	nMeasured int

	reqCounter int
}

// NewYCSBWorkload builds a YCSBWorkload. variant must be "A", "B" or "C";
// "D" and "E" return a ConfigError since they are not yet implemented.
func NewYCSBWorkload(topo *topology.Topology, variant YCSBVariant, nContents int, alpha float64, nWarmup, nMeasured int, rng *rand.Rand) (*YCSBWorkload, error) {
	switch variant {
	case YCSBWorkloadA, YCSBWorkloadB, YCSBWorkloadC:
	case YCSBWorkloadD, YCSBWorkloadE:
		return nil, simerr.NewConfigError("YCSBWorkload", "workload %q is not yet implemented", variant)
	default:
		return nil, simerr.NewConfigError("YCSBWorkload", "unknown workload identifier %q", variant)
	}
	zipf, err := statdist.NewTruncatedZipfDist(alpha, nContents)
	if err != nil {
		return nil, err
	}
	receivers, err := newReceiverSelector(topo, 0)
	if err != nil {
		return nil, err
	}
	return &YCSBWorkload{
		variant:   variant,
		zipf:      zipf,
		receivers: receivers,
		rng:       rng,
		nWarmup:   nWarmup,
		nMeasured: nMeasured,
	}, nil
}

func (w *YCSBWorkload) Next() (float64, Event, bool, error) {
	if w.reqCounter >= w.nWarmup+w.nMeasured {
		return 0, Event{}, false, nil
	}
	u := w.rng.Float64()
	item := w.zipf.Sample(w.rng)
	op := "UPDATE"
	if u < readCutoff[w.variant] {
		op = "READ"
	}
	log := w.reqCounter >= w.nWarmup
	receiver := w.receivers.next(w.rng)
	w.reqCounter++
	return float64(w.reqCounter), Event{
		Receiver: receiver,
		Content:  cache.ContentID(strconv.Itoa(item)),
		Log:      log,
		Op:       op,
	}, true, nil
}

func (w *YCSBWorkload) Contents() []cache.ContentID {
	out := make([]cache.ContentID, w.zipf.N())
	for i := 0; i < w.zipf.N(); i++ {
		out[i] = cache.ContentID(strconv.Itoa(i + 1))
	}
	return out
}
