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

// Operation is a binary operation over integers parameterized by a modulus.
//
// # Description
//
// The validator never hard-codes the operation; it receives one of these and
// supplies the modulus it derives from the candidate set at validation time.
// Implementations must be pure and deterministic.
//
// # Assumptions
//
//   - modulus is always > 0 when called by the validator
type Operation interface {
	// Apply combines a and b under the given modulus.
	Apply(a, b, modulus int) int

	// Name is a short display name such as "+ (mod n)".
	Name() string

	// Symbol is the infix symbol used in failure witnesses.
	Symbol() string
}

// OperationFunc adapts a plain function to the Operation interface.
type OperationFunc struct {
	Fn      func(a, b, modulus int) int
	Label   string
	Operand string
}

// Apply calls the wrapped function.
func (f OperationFunc) Apply(a, b, modulus int) int { return f.Fn(a, b, modulus) }

// Name returns the label, or "op" when unset.
func (f OperationFunc) Name() string {
	if f.Label == "" {
		return "op"
	}
	return f.Label
}

// Symbol returns the operand symbol, or "∘" when unset.
func (f OperationFunc) Symbol() string {
	if f.Operand == "" {
		return "∘"
	}
	return f.Operand
}

// ModularAddition is (a + b) mod modulus using Go's remainder semantics.
//
// Negative inputs therefore produce non-positive results, which is the same
// behavior as a truncating remainder on signed integers.
type ModularAddition struct{}

// Apply returns (a + b) % modulus. Panics if modulus is zero; the validator
// rejects empty sets before any call.
func (ModularAddition) Apply(a, b, modulus int) int {
	return (a + b) % modulus
}

// Name returns the display name.
func (ModularAddition) Name() string { return "addition mod |S|" }

// Symbol returns "+".
func (ModularAddition) Symbol() string { return "+" }

var _ Operation = ModularAddition{}
var _ Operation = OperationFunc{}
