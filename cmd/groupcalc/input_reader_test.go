// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// StdinReader Tests
// =============================================================================

func TestLineReader_TrimsAndEndsWithEOF(t *testing.T) {
	r := NewLineReader(strings.NewReader("  add 1 2  \n\nlist"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "add 1 2", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "list", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewInputReader_NonStdinUsesLineReader(t *testing.T) {
	r := newInputReader(&bytes.Buffer{}, 10)
	_, ok := r.(*StdinReader)
	assert.True(t, ok)
}

// =============================================================================
// MockInputReader Tests
// =============================================================================

func TestMockInputReader(t *testing.T) {
	m := NewMockInputReader([]string{"add 0", " exit "})

	line, err := m.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "add 0", line)

	line, err = m.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "exit", line)

	_, err = m.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

// =============================================================================
// Interactive history Tests
// =============================================================================

func TestInteractiveInputReader_History(t *testing.T) {
	r := &InteractiveInputReader{maxHistory: 2}

	r.addToHistory("add 1")
	r.addToHistory("add 1") // consecutive duplicate
	r.addToHistory("list")
	r.addToHistory("create")

	assert.Equal(t, []string{"list", "create"}, r.history)
}

func TestInteractiveInputReader_HistoryDisabled(t *testing.T) {
	r := &InteractiveInputReader{maxHistory: 0}
	r.addToHistory("add 1")
	assert.Empty(t, r.history)
}

func newTestInputModel(history []string) inputModel {
	ti := textinput.New()
	ti.Focus()
	return inputModel{textInput: ti, history: history, historyIndex: -1}
}

func TestInputModel_HistoryNavigation(t *testing.T) {
	m := newTestInputModel([]string{"add 1", "list"})
	m.textInput.SetValue("cre")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(inputModel)
	assert.Equal(t, "list", m.textInput.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(inputModel)
	assert.Equal(t, "add 1", m.textInput.Value())

	// Stays on the oldest entry.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(inputModel)
	assert.Equal(t, "add 1", m.textInput.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(inputModel)
	assert.Equal(t, "list", m.textInput.Value())

	// Back to the line in progress.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(inputModel)
	assert.Equal(t, "cre", m.textInput.Value())
}

func TestInputModel_ControlKeys(t *testing.T) {
	m := newTestInputModel(nil)
	m.textInput.SetValue("add 3")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(inputModel)
	assert.True(t, got.done)
	assert.False(t, got.cancelled)
	assert.Equal(t, "add 3", got.textInput.Value())
	assert.NotNil(t, cmd)
	assert.Equal(t, "", got.View())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got = next.(inputModel)
	assert.True(t, got.done)
	assert.False(t, got.cancelled)
	assert.Equal(t, "", got.textInput.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	got = next.(inputModel)
	assert.True(t, got.cancelled)
}
