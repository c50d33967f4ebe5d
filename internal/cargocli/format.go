// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cargocli

import (
	"fmt"
	"strings"
)

// RunFormats are the output formats cargocult run accepts for its
// per-niche result summary.
var RunFormats = []string{"default", "json"}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (allowed: %s)", format, strings.Join(allowed, ", "))
}
