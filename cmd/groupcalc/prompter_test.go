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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/groupcalc/cmd/groupcalc/internal/session"
	"github.com/AleutianAI/groupcalc/pkg/ux"
)

type recordingPromptReader struct {
	*MockInputReader
	prompts []string
}

func (r *recordingPromptReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func TestLinePrompter_WritesPromptToOutput(t *testing.T) {
	var out bytes.Buffer
	ui := ux.NewSessionUIWithWriter(io.Discard, ux.PersonalityMinimal)
	p := NewLinePrompter(ui, NewMockInputReader([]string{" 12 "}), &out)

	answer, err := p.PromptValue("Enter identity element", validateElement)
	require.NoError(t, err)
	assert.Equal(t, "12", answer)
	assert.Equal(t, "Enter identity element: ", out.String())
}

func TestLinePrompter_PromptingReaderDrawsPrompt(t *testing.T) {
	var out bytes.Buffer
	reader := &recordingPromptReader{MockInputReader: NewMockInputReader([]string{"1 2"})}
	ui := ux.NewSessionUIWithWriter(io.Discard, ux.PersonalityMachine)
	p := NewLinePrompter(ui, reader, &out)

	answer, err := p.PromptValue("Enter elements", nil)
	require.NoError(t, err)
	assert.Equal(t, "1 2", answer)
	assert.Equal(t, []string{"Enter elements: "}, reader.prompts)
	assert.Empty(t, out.String())
}

func TestLinePrompter_EOF(t *testing.T) {
	ui := ux.NewSessionUIWithWriter(io.Discard, ux.PersonalityMachine)
	p := NewLinePrompter(ui, NewMockInputReader(nil), io.Discard)

	_, err := p.PromptValue("Enter elements", nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAnswerValidators(t *testing.T) {
	assert.NoError(t, validateElement("-3"))
	assert.ErrorIs(t, validateElement("3.5"), session.ErrNotInteger)
	assert.ErrorIs(t, validateElement("1 2"), session.ErrNotInteger)

	assert.NoError(t, validateElements("1 2  -3"))
	assert.NoError(t, validateElements(""))
	assert.ErrorIs(t, validateElements("1 two"), session.ErrNotInteger)
}
