// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cargocli

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v as JSON to w. If verbose is true, it pretty-prints
// with two-space indentation.
func WriteJSON(w io.Writer, v any, verbose bool) error {
	encoder := json.NewEncoder(w)
	if verbose {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
