// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package group

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	metricsNamespace = "groupcalc"
	metricsSubsystem = "validator"
)

const (
	resultValid      = "valid"
	resultInvalid    = "invalid"
	resultDegenerate = "degenerate"
)

// Metrics holds the Prometheus collectors for validation runs.
//
// # Fields
//
//   - ValidationsTotal: validations by result (valid, invalid, degenerate)
//   - AxiomFailuresTotal: failed axioms by name
//   - ValidationDuration: wall time per validation
//   - GroupOrder: order of every validated candidate
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	AxiomFailuresTotal *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	GroupOrder         prometheus.Histogram
}

// NewMetrics creates and registers the validator collectors on reg.
//
// Every result and axiom label is pre-initialized so a summary shows zero
// counts before the first validation.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "validations_total",
			Help:      "Group validations by result",
		}, []string{"result"}),
		AxiomFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "axiom_failures_total",
			Help:      "Unsatisfied group axioms by name",
		}, []string{"axiom"}),
		ValidationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "validation_duration_seconds",
			Help:      "Time to validate one candidate",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		GroupOrder: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "candidate_order",
			Help:      "Number of elements in validated candidates",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		}),
	}

	for _, r := range []string{resultValid, resultInvalid, resultDegenerate} {
		m.ValidationsTotal.WithLabelValues(r)
	}
	for _, a := range Axioms() {
		m.AxiomFailuresTotal.WithLabelValues(string(a))
	}
	return m
}

func (m *Metrics) observe(result string, order int, failures []AxiomFailure, d time.Duration) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(result).Inc()
	for _, f := range failures {
		m.AxiomFailuresTotal.WithLabelValues(string(f.Axiom)).Inc()
	}
	m.ValidationDuration.Observe(d.Seconds())
	m.GroupOrder.Observe(float64(order))
}

// MetricsSummary is a point-in-time view of the validation counters.
type MetricsSummary struct {
	Valid         int
	Invalid       int
	Degenerate    int
	AxiomFailures map[Axiom]int
}

// Total returns the number of validations of any result.
func (s MetricsSummary) Total() int {
	return s.Valid + s.Invalid + s.Degenerate
}

// Summarize reads the validator counters back out of g.
func Summarize(g prometheus.Gatherer) (MetricsSummary, error) {
	summary := MetricsSummary{AxiomFailures: make(map[Axiom]int)}

	families, err := g.Gather()
	if err != nil {
		return summary, fmt.Errorf("gather metrics: %w", err)
	}

	validations := prometheus.BuildFQName(metricsNamespace, metricsSubsystem, "validations_total")
	axiomFailures := prometheus.BuildFQName(metricsNamespace, metricsSubsystem, "axiom_failures_total")

	for _, mf := range families {
		switch mf.GetName() {
		case validations:
			for _, metric := range mf.GetMetric() {
				n := int(metric.GetCounter().GetValue())
				switch labelValue(metric, "result") {
				case resultValid:
					summary.Valid = n
				case resultInvalid:
					summary.Invalid = n
				case resultDegenerate:
					summary.Degenerate = n
				}
			}
		case axiomFailures:
			for _, metric := range mf.GetMetric() {
				axiom := Axiom(labelValue(metric, "axiom"))
				summary.AxiomFailures[axiom] = int(metric.GetCounter().GetValue())
			}
		}
	}
	return summary, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
