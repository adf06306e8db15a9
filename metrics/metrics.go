// Package metrics exposes simulator statistics as Prometheus metrics.
package metrics

import (
	"github.com/phroun/hashlife"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is the universe state the collector reads on every scrape.
type Source interface {
	Store() *hashlife.Store
	Generation() int64
	Level() int
	Population() uint64
}

// Collector is a prometheus.Collector over a universe and its store.
// Values are read at collection time, so the collector never goes stale.
type Collector struct {
	src Source

	nodes       *prometheus.Desc
	freeSlots   *prometheus.Desc
	results     *prometheus.Desc
	hits        *prometheus.Desc
	misses      *prometheus.Desc
	collections *prometheus.Desc
	swept       *prometheus.Desc
	generation  *prometheus.Desc
	level       *prometheus.Desc
	population  *prometheus.Desc
}

// NewCollector creates a collector whose metric names start with namespace.
func NewCollector(namespace string, src Source) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}
	return &Collector{
		src:         src,
		nodes:       desc("store_nodes", "Live canonical nodes in the store"),
		freeSlots:   desc("store_free_slots", "Reclaimed arena slots awaiting reuse"),
		results:     desc("store_results", "Memoized forward results"),
		hits:        desc("forward_cache_hits_total", "Forward lookups answered from the result table"),
		misses:      desc("forward_cache_misses_total", "Forward lookups that had to be computed"),
		collections: desc("collections_total", "Completed store collections"),
		swept:       desc("swept_nodes_total", "Nodes reclaimed by collections"),
		generation:  desc("generation", "Current generation"),
		level:       desc("root_level", "Level of the root node"),
		population:  desc("population", "Live cells in the universe"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.nodes, c.freeSlots, c.results, c.hits, c.misses,
		c.collections, c.swept, c.generation, c.level, c.population,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Store().Stats()
	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	counter := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, v)
	}

	gauge(c.nodes, float64(stats.Nodes))
	gauge(c.freeSlots, float64(stats.FreeSlots))
	gauge(c.results, float64(stats.Results))
	counter(c.hits, float64(stats.CacheHits))
	counter(c.misses, float64(stats.CacheMisses))
	counter(c.collections, float64(stats.Collections))
	counter(c.swept, float64(stats.Swept))
	gauge(c.generation, float64(c.src.Generation()))
	gauge(c.level, float64(c.src.Level()))
	gauge(c.population, float64(c.src.Population()))
}
