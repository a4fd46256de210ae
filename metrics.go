package main

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "teams"

// searchMetrics counts what the local search did. Each optimizer owns a
// private registry so runs in the same process never collide.
type searchMetrics struct {
	reg *prometheus.Registry

	iterations   prometheus.Counter
	relocations  prometheus.Counter
	tabuSkips    prometheus.Counter
	improvements prometheus.Counter
	revisits     prometheus.Counter
	bestCost     prometheus.Gauge
	currentCost  prometheus.Gauge
	teams        prometheus.Gauge
}

func newSearchMetrics() *searchMetrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: "search", Name: name, Help: help,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: "search", Name: name, Help: help,
		})
	}
	m := &searchMetrics{
		reg:          prometheus.NewRegistry(),
		iterations:   counter("iterations_total", "Local search iterations executed."),
		relocations:  counter("relocations_total", "Iterations that moved a person to a different team."),
		tabuSkips:    counter("tabu_skips_total", "Costly people passed over because they were tabu."),
		improvements: counter("improvements_total", "Iterations that lowered the best total cost."),
		revisits:     counter("revisits_total", "Iterations that landed on a grouping seen earlier in the run."),
		bestCost:     gauge("best_cost", "Total cost of the best assignment so far."),
		currentCost:  gauge("current_cost", "Total cost of the current assignment."),
		teams:        gauge("best_teams", "Number of teams in the best assignment."),
	}
	m.reg.MustRegister(m.iterations, m.relocations, m.tabuSkips, m.improvements,
		m.revisits, m.bestCost, m.currentCost, m.teams)
	return m
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (m *searchMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
