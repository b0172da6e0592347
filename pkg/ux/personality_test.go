// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"testing"
)

func TestParsePersonalityLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected PersonalityLevel
	}{
		{"full", PersonalityFull},
		{"F", PersonalityFull},
		{"standard", PersonalityStandard},
		{"std", PersonalityStandard},
		{"minimal", PersonalityMinimal},
		{"min", PersonalityMinimal},
		{"machine", PersonalityMachine},
		{"quiet", PersonalityMachine},
		{" q ", PersonalityMachine},
		{"unknown", PersonalityStandard},
		{"", PersonalityStandard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParsePersonalityLevel(tt.input); got != tt.expected {
				t.Errorf("ParsePersonalityLevel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectPersonality(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		tty      bool
		want     PersonalityLevel
	}{
		{"explicit wins", "minimal", "full", true, PersonalityMinimal},
		{"env when no flag", "", "machine", true, PersonalityMachine},
		{"piped output", "", "", false, PersonalityMachine},
		{"terminal", "", "", true, PersonalityFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectPersonality(tt.explicit, tt.env, tt.tty); got != tt.want {
				t.Errorf("detectPersonality() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetPersonalityLevel(t *testing.T) {
	original := GetPersonality()
	defer SetPersonalityLevel(original)

	SetPersonalityLevel(PersonalityMinimal)
	if got := GetPersonality(); got != PersonalityMinimal {
		t.Errorf("GetPersonality() = %q, want %q", got, PersonalityMinimal)
	}
}
