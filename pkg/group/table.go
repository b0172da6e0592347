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

// Table is the Cayley table of a set under an operation.
//
// Cells[i][j] holds Elements[i] op Elements[j] with modulus len(Elements).
type Table struct {
	Elements []int
	Modulus  int
	Symbol   string
	Cells    [][]int
}

// CayleyTable computes the operation table for elements under op.
// Returns ErrDegenerateGroup for an empty set.
func CayleyTable(elements ElementSet, op Operation) (Table, error) {
	if op == nil {
		return Table{}, ErrNilOperation
	}
	if elements.Len() == 0 {
		return Table{}, ErrDegenerateGroup
	}

	elems := elements.Sorted()
	m := len(elems)
	cells := make([][]int, m)
	for i, a := range elems {
		row := make([]int, m)
		for j, b := range elems {
			row[j] = op.Apply(a, b, m)
		}
		cells[i] = row
	}

	return Table{
		Elements: elems,
		Modulus:  m,
		Symbol:   op.Symbol(),
		Cells:    cells,
	}, nil
}

// Closed reports whether every cell is itself an element.
func (t Table) Closed() bool {
	members := NewElementSet(t.Elements...)
	for _, row := range t.Cells {
		for _, v := range row {
			if !members.Contains(v) {
				return false
			}
		}
	}
	return true
}
