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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

// executeRoot runs the root command with stdin and returns stdout/stderr.
func executeRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "groupcalc.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: error\n"), 0644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", configPath, "--personality", "machine"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_PipedSession(t *testing.T) {
	stdout, _, err := executeRoot(t, "add 0 1 2\nidentity 0\ncreate\nstats\n")
	require.NoError(t, err)

	assert.Contains(t, stdout, "GROUP_CREATED: Group{order: 3, elements: {0, 1, 2}, operation: addition mod |S|, identity: 0}")
	assert.Contains(t, stdout, "STATS: validations=1 valid=1 invalid=0 degenerate=0")
	assert.Contains(t, stdout, "validations=1")
}

func TestRootCmd_FinalLineWithoutNewline(t *testing.T) {
	stdout, _, err := executeRoot(t, "add 7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ADDED: 7")
}

func TestRootCmd_TestModeBanner(t *testing.T) {
	for _, flag := range []string{"--test", "-t"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _, err := executeRoot(t, "exit\n", flag)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(stdout, "Test mode enabled.\n"), stdout)
		})
	}
}

func TestRootCmd_NoBannerByDefault(t *testing.T) {
	stdout, _, err := executeRoot(t, "exit\n")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Test mode enabled.")
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	_, _, err := executeRoot(t, "", "extra")
	assert.Error(t, err)
}

func TestRootCmd_InvalidFlagOverride(t *testing.T) {
	_, _, err := executeRoot(t, "", "--trace", "zipkin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_StdoutTraceExporter(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	_, stderr, err := executeRoot(t, "add 0\nidentity 0\ncreate\n", "--trace", "stdout")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Validator.Validate")
}
