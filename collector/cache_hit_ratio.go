package collector

import (
	"github.com/icnsim/icnsim/cache"
	"github.com/icnsim/icnsim/topology"
)

// CacheHitRatioCollector counts cache_hit and server_hit events per
// session and reports the global and (optionally) per-content hit ratio
// (spec §4.3, property 6).
type CacheHitRatioCollector struct {
	contentHits bool

	cacheHits int
	servHits  int

	currContent     cache.ContentID
	contCacheHits   map[cache.ContentID]int
	contServHits    map[cache.ContentID]int
	contentsInOrder []cache.ContentID
	seenContent     map[cache.ContentID]bool
}

// NewCacheHitRatioCollector builds a collector. If contentHits is true, the
// PER_CONTENT breakdown is also recorded.
func NewCacheHitRatioCollector(contentHits bool) *CacheHitRatioCollector {
	c := &CacheHitRatioCollector{contentHits: contentHits}
	if contentHits {
		c.contCacheHits = make(map[cache.ContentID]int)
		c.contServHits = make(map[cache.ContentID]int)
		c.seenContent = make(map[cache.ContentID]bool)
	}
	return c
}

func (c *CacheHitRatioCollector) Name() string { return "CACHE_HIT_RATIO" }

func (c *CacheHitRatioCollector) Capabilities() EventMask {
	return EventStartSession | EventCacheHit | EventServerHit
}

func (c *CacheHitRatioCollector) StartSession(_ float64, _ topology.NodeID, content cache.ContentID) {
	if c.contentHits {
		c.currContent = content
		if !c.seenContent[content] {
			c.seenContent[content] = true
			c.contentsInOrder = append(c.contentsInOrder, content)
		}
	}
}

func (c *CacheHitRatioCollector) CacheHit(topology.NodeID) {
	c.cacheHits++
	if c.contentHits {
		c.contCacheHits[c.currContent]++
	}
}

func (c *CacheHitRatioCollector) ServerHit(topology.NodeID) {
	c.servHits++
	if c.contentHits {
		c.contServHits[c.currContent]++
	}
}

func (c *CacheHitRatioCollector) RequestHop(_, _ topology.NodeID) {}
func (c *CacheHitRatioCollector) ContentHop(_, _ topology.NodeID) {}
func (c *CacheHitRatioCollector) EndSession(bool)                 {}

func (c *CacheHitRatioCollector) Results() map[string]any {
	results := map[string]any{}
	total := c.cacheHits + c.servHits
	if total > 0 {
		results["MEAN"] = float64(c.cacheHits) / float64(total)
	}
	if c.contentHits {
		perContent := make(map[cache.ContentID]float64, len(c.contentsInOrder))
		for _, content := range c.contentsInOrder {
			hits := c.contCacheHits[content]
			serv := c.contServHits[content]
			if hits+serv == 0 {
				continue
			}
			perContent[content] = float64(hits) / float64(hits+serv)
		}
		results["PER_CONTENT"] = perContent
	}
	return results
}
