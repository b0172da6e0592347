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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/groupcalc/cmd/groupcalc/config"
	"github.com/AleutianAI/groupcalc/pkg/group"
	"github.com/AleutianAI/groupcalc/pkg/logging"
	"github.com/AleutianAI/groupcalc/pkg/telemetry"
	"github.com/AleutianAI/groupcalc/pkg/ux"
)

const version = "0.1.0"

// rootOptions holds the persistent flag values.
type rootOptions struct {
	testMode    bool
	configPath  string
	personality string // full/standard/minimal/machine
	logLevel    string
	trace       string // none/stdout/otlp
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "groupcalc",
		Short: "An interactive calculator that checks the group axioms",
		Long: `groupcalc builds a set of integers and checks whether it forms a group
under addition modulo the size of the set, reporting every axiom that fails.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.testMode, "test", "t", false, "Run in test mode")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.groupcalc/groupcalc.yaml)")
	flags.StringVar(&opts.personality, "personality", "", "Output style: full, standard, minimal, machine")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.trace, "trace", "", "Trace exporter: none, stdout, otlp")

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.GroupCalcConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.GroupCalcConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("personality") {
		cfg.UX.Personality = opts.personality
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("trace") {
		cfg.Telemetry.TraceExporter = opts.trace
	}

	if err := config.Validate(cfg); err != nil {
		return config.GroupCalcConfig{}, err
	}
	return cfg, nil
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := ux.InitPersonality(cfg.UX.Personality)

	logLevel, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{
		Level:   logLevel,
		LogDir:  cfg.Logging.Dir,
		Service: "groupcalc",
		JSON:    cfg.Logging.JSON,
		Console: errOut,
	})
	defer logger.Close()

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "groupcalc",
		ServiceVersion: version,
		TraceExporter:  cfg.Telemetry.TraceExporter,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   true,
		Writer:         errOut,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	ui := ux.NewSessionUIWithWriter(out, level)
	if opts.testMode {
		ui.Banner(ux.TestModeBanner)
	}

	input := newInputReader(cmd.InOrStdin(), cfg.Session.HistorySize)
	var prompter ValuePrompter
	if _, interactive := input.(*InteractiveInputReader); interactive &&
		(level == ux.PersonalityFull || level == ux.PersonalityStandard) {
		prompter = NewHuhPrompter()
	}

	runner, err := NewSessionRunner(SessionRunnerConfig{
		UI:          ui,
		Input:       input,
		Prompter:    prompter,
		Operation:   group.ModularAddition{},
		MaxElements: cfg.Session.MaxElements,
		Registry:    prometheus.NewRegistry(),
		Logger:      logger,
		Output:      out,
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}

// newInputReader uses the interactive reader only for the real stdin.
func newInputReader(in io.Reader, historySize int) InputReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		return NewInteractiveInputReader(historySize)
	}
	return NewLineReader(in)
}
