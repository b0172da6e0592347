// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

// CurrentConfigVersion is written into newly created config files.
const CurrentConfigVersion = "1"

type GroupCalcConfig struct {
	Meta MetaConfig `yaml:"meta"`

	// Session: limits of the interactive session
	Session SessionConfig `yaml:"session"`

	// Logging: level and optional log directory
	Logging LoggingConfig `yaml:"logging"`

	// Telemetry: trace exporter selection
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// UX: output personality
	UX UXConfig `yaml:"ux"`
}

type MetaConfig struct {
	Version string `yaml:"version" validate:"required"`
}

type SessionConfig struct {
	MaxElements int `yaml:"max_elements" validate:"gte=1,lte=4096"` // associativity is O(n³)
	HistorySize int `yaml:"history_size" validate:"gte=0,lte=1000"` // interactive input history
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Dir   string `yaml:"dir,omitempty"` // e.g. ~/.groupcalc/logs
	JSON  bool   `yaml:"json"`
}

type TelemetryConfig struct {
	// TraceExporter can be "none", "stdout" or "otlp"
	TraceExporter string `yaml:"trace_exporter" validate:"oneof=none stdout otlp"`
	OTLPEndpoint  string `yaml:"otlp_endpoint,omitempty" validate:"required_if=TraceExporter otlp"`
}

type UXConfig struct {
	// Personality can be "full", "standard", "minimal", "machine" or empty for auto-detect
	Personality string `yaml:"personality,omitempty" validate:"omitempty,oneof=full standard minimal machine"`
}

func DefaultConfig() GroupCalcConfig {
	return GroupCalcConfig{
		Meta: MetaConfig{Version: CurrentConfigVersion},
		Session: SessionConfig{
			MaxElements: 256,
			HistorySize: 50,
		},
		Logging: LoggingConfig{
			Level: "warn",
			JSON:  true,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
			OTLPEndpoint:  "localhost:4317",
		},
	}
}
