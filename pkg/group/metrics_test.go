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
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsEveryResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	v := NewValidator(WithMetrics(m))
	ctx := context.Background()

	_, _ = v.Validate(ctx, NewCandidate(NewElementSet(0, 1, 2), ModularAddition{}, 0))
	_, _ = v.Validate(ctx, NewCandidate(NewElementSet(1, 2, 3), ModularAddition{}, 0))
	_, _ = v.Validate(ctx, NewCandidate(NewElementSet(), ModularAddition{}, 0))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationsTotal.WithLabelValues(resultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationsTotal.WithLabelValues(resultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationsTotal.WithLabelValues(resultDegenerate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AxiomFailuresTotal.WithLabelValues(string(AxiomClosure))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AxiomFailuresTotal.WithLabelValues(string(AxiomInverse))))
}

func TestSummarize(t *testing.T) {
	reg := prometheus.NewRegistry()
	v := NewValidator(WithMetrics(NewMetrics(reg)))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _ = v.Validate(ctx, NewCandidate(NewElementSet(1, 2, 3), ModularAddition{}, 0))
	}
	_, _ = v.Validate(ctx, NewCandidate(NewElementSet(0), ModularAddition{}, 0))

	summary, err := Summarize(reg)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 2, summary.Invalid)
	assert.Equal(t, 0, summary.Degenerate)
	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, 2, summary.AxiomFailures[AxiomMembership])
	assert.Equal(t, 2, summary.AxiomFailures[AxiomIdentity])
	assert.Equal(t, 0, summary.AxiomFailures[AxiomAssociativity])
	assert.Len(t, summary.AxiomFailures, len(Axioms()))
}

func TestSummarize_FreshRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	summary, err := Summarize(reg)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total())
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(resultValid, 3, nil, 0)
	})
}
