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
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("groupcalc.group")

// Validator checks group axioms for a Candidate.
//
// # Description
//
// Validate evaluates five predicates over the candidate's elements with
// modulus = |elements|: identity membership, closure, associativity,
// two-sided identity and two-sided inverses. Every predicate is always
// evaluated, and each one stops at its first counterexample, so a failing
// candidate reports all of its broken axioms with one witness apiece.
//
// Elements are visited in ascending order, which makes the verdict and the
// witnesses identical across repeated calls.
//
// # Thread Safety
//
// A Validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithMetrics records every validation into m.
func WithMetrics(m *Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks c against the group axioms.
//
// # Outputs
//
//   - *Group: non-nil when every axiom holds
//   - error: ErrDegenerateGroup for an empty set, ErrNilOperation when the
//     candidate has no operation, *ValidationError listing every failed axiom
//     otherwise
func (v *Validator) Validate(ctx context.Context, c Candidate) (*Group, error) {
	start := time.Now()
	order := c.Modulus()

	_, span := tracer.Start(ctx, "Validator.Validate",
		trace.WithAttributes(
			attribute.Int("group.order", order),
			attribute.Int("group.identity", c.identity),
		),
	)
	defer span.End()

	if c.op == nil {
		span.SetStatus(codes.Error, ErrNilOperation.Error())
		return nil, ErrNilOperation
	}
	span.SetAttributes(attribute.String("group.operation", c.op.Name()))

	if order == 0 {
		v.metrics.observe(resultDegenerate, 0, nil, time.Since(start))
		span.SetStatus(codes.Error, ErrDegenerateGroup.Error())
		v.logger.Debug("rejected degenerate candidate", "identity", c.identity)
		return nil, ErrDegenerateGroup
	}

	chk := checker{
		set:      c.elements,
		elems:    c.elements.Sorted(),
		op:       c.op,
		modulus:  order,
		identity: c.identity,
	}

	var failures []AxiomFailure
	if f, ok := chk.membership(); !ok {
		failures = append(failures, f)
	}
	if f, ok := chk.closure(); !ok {
		failures = append(failures, f)
	}
	if f, ok := chk.associativity(); !ok {
		failures = append(failures, f)
	}
	if f, ok := chk.identityLaw(); !ok {
		failures = append(failures, f)
	}
	inverses, f, ok := chk.inverses()
	if !ok {
		failures = append(failures, f)
	}

	if len(failures) > 0 {
		v.metrics.observe(resultInvalid, order, failures, time.Since(start))
		span.SetAttributes(attribute.Int("group.failed_axioms", len(failures)))
		span.SetStatus(codes.Error, "axioms unsatisfied")
		v.logger.Debug("candidate is not a group",
			"order", order,
			"identity", c.identity,
			"failed_axioms", len(failures),
		)
		return nil, &ValidationError{Failures: failures}
	}

	v.metrics.observe(resultValid, order, nil, time.Since(start))
	v.logger.Debug("candidate is a group", "order", order, "identity", c.identity)

	return &Group{
		elements:  chk.elems,
		identity:  c.identity,
		operation: c.op.Name(),
		inverses:  inverses,
	}, nil
}

// Validate checks (elements, op, identity) with a default Validator.
func Validate(elements ElementSet, op Operation, identity int) (*Group, error) {
	return NewValidator().Validate(context.Background(), NewCandidate(elements, op, identity))
}

// checker evaluates the individual predicates for one candidate.
type checker struct {
	set      ElementSet
	elems    []int
	op       Operation
	modulus  int
	identity int
}

func (c checker) apply(a, b int) int {
	return c.op.Apply(a, b, c.modulus)
}

func (c checker) membership() (AxiomFailure, bool) {
	if c.set.Contains(c.identity) {
		return AxiomFailure{}, true
	}
	return AxiomFailure{
		Axiom:  AxiomMembership,
		Detail: fmt.Sprintf("identity %d is not an element of %s", c.identity, FormatElements(c.elems)),
	}, false
}

func (c checker) closure() (AxiomFailure, bool) {
	for _, x := range c.elems {
		for _, y := range c.elems {
			r := c.apply(x, y)
			if !c.set.Contains(r) {
				return AxiomFailure{
					Axiom: AxiomClosure,
					Detail: fmt.Sprintf("%d %s %d (mod %d) = %d, which is not in the set",
						x, c.op.Symbol(), y, c.modulus, r),
				}, false
			}
		}
	}
	return AxiomFailure{}, true
}

func (c checker) associativity() (AxiomFailure, bool) {
	sym := c.op.Symbol()
	for _, a := range c.elems {
		for _, b := range c.elems {
			ab := c.apply(a, b)
			for _, x := range c.elems {
				left := c.apply(ab, x)
				right := c.apply(a, c.apply(b, x))
				if left != right {
					return AxiomFailure{
						Axiom: AxiomAssociativity,
						Detail: fmt.Sprintf("(%d %s %d) %s %d = %d but %d %s (%d %s %d) = %d (mod %d)",
							a, sym, b, sym, x, left, a, sym, b, sym, x, right, c.modulus),
					}, false
				}
			}
		}
	}
	return AxiomFailure{}, true
}

func (c checker) identityLaw() (AxiomFailure, bool) {
	sym := c.op.Symbol()
	e := c.identity
	for _, x := range c.elems {
		if r := c.apply(x, e); r != x {
			return AxiomFailure{
				Axiom:  AxiomIdentity,
				Detail: fmt.Sprintf("%d %s %d (mod %d) = %d, expected %d", x, sym, e, c.modulus, r, x),
			}, false
		}
		if r := c.apply(e, x); r != x {
			return AxiomFailure{
				Axiom:  AxiomIdentity,
				Detail: fmt.Sprintf("%d %s %d (mod %d) = %d, expected %d", e, sym, x, c.modulus, r, x),
			}, false
		}
	}
	return AxiomFailure{}, true
}

func (c checker) inverses() (map[int]int, AxiomFailure, bool) {
	out := make(map[int]int, len(c.elems))
	for _, a := range c.elems {
		found := false
		for _, b := range c.elems {
			if c.apply(a, b) == c.identity && c.apply(b, a) == c.identity {
				out[a] = b
				found = true
				break
			}
		}
		if !found {
			return nil, AxiomFailure{
				Axiom: AxiomInverse,
				Detail: fmt.Sprintf("%d has no inverse: no b in the set gives %d %s b = b %s %d = %d",
					a, a, c.op.Symbol(), c.op.Symbol(), a, c.identity),
			}, false
		}
	}
	return out, AxiomFailure{}, true
}
