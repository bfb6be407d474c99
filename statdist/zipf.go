// Package statdist implements the discrete distributions the workload
// engines sample from: a general finite discrete distribution and the
// truncated Zipf law used for content and (optionally) receiver popularity.
package statdist

import (
	"math"
	"math/rand"
	"sort"

	"github.com/icnsim/icnsim/simerr"
)

// DiscreteDist implements a discrete distribution over a finite population
// {1, ..., N}. The support is always a contiguous range of integers starting
// at 1, matching the reference implementation's convention.
type DiscreteDist struct {
	pdf []float64
	cdf []float64
}

// NewDiscreteDist builds a DiscreteDist from a pdf that must sum to 1.0
// within 1e-9 tolerance (spec property 10).
func NewDiscreteDist(pdf []float64) (*DiscreteDist, error) {
	sum := 0.0
	for _, p := range pdf {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, simerr.NewConfigError("DiscreteDist", "pdf must sum to 1.0 within 1e-9, got %v", sum)
	}
	cdf := make([]float64, len(pdf))
	cum := 0.0
	for i, p := range pdf {
		cum += p
		cdf[i] = cum
	}
	// Force the last CDF entry to 1.0 to eliminate floating-point rounding
	// at the tail (spec §4.5).
	if len(cdf) > 0 {
		cdf[len(cdf)-1] = 1.0
	}
	return &DiscreteDist{pdf: pdf, cdf: cdf}, nil
}

// Len returns the cardinality of the support.
func (d *DiscreteDist) Len() int { return len(d.pdf) }

// PDF returns the probability density function.
func (d *DiscreteDist) PDF() []float64 { return d.pdf }

// CDF returns the cumulative density function.
func (d *DiscreteDist) CDF() []float64 { return d.cdf }

// Sample draws u ~ Uniform[0,1) from rng and binary-searches the CDF,
// returning the smallest 1-based index whose CDF entry is >= u.
func (d *DiscreteDist) Sample(rng *rand.Rand) int {
	u := rng.Float64()
	idx := sort.SearchFloat64s(d.cdf, u)
	if idx >= len(d.cdf) {
		idx = len(d.cdf) - 1
	}
	return idx + 1
}

// TruncatedZipfDist is a Zipf distribution with a finite population, which
// can therefore take any alpha > 0 (unlike the infinite-population Zipf law,
// which only converges for alpha > 1).
type TruncatedZipfDist struct {
	*DiscreteDist
	alpha float64
	n     int
}

// NewTruncatedZipfDist builds a TruncatedZipfDist with pdf[i] = (i+1)^(-alpha)
// / sum, for i in [0, n). alpha and n must both be positive.
func NewTruncatedZipfDist(alpha float64, n int) (*TruncatedZipfDist, error) {
	if alpha <= 0 {
		return nil, simerr.NewConfigError("TruncatedZipfDist", "alpha must be positive, got %v", alpha)
	}
	if n <= 0 {
		return nil, simerr.NewConfigError("TruncatedZipfDist", "n must be positive, got %d", n)
	}
	pdf := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		v := math.Pow(float64(i+1), -alpha)
		pdf[i] = v
		sum += v
	}
	for i := range pdf {
		pdf[i] /= sum
	}
	dd, err := NewDiscreteDist(pdf)
	if err != nil {
		return nil, err
	}
	return &TruncatedZipfDist{DiscreteDist: dd, alpha: alpha, n: n}, nil
}

// Alpha returns the Zipf shape parameter.
func (z *TruncatedZipfDist) Alpha() float64 { return z.alpha }

// N returns the population size.
func (z *TruncatedZipfDist) N() int { return z.n }
