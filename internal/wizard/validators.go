// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wizard

import (
	"errors"
	"net/url"
	"strings"
)

// ValidateNicheName validates a niche name: required, alphanumeric plus
// dash/underscore only (it becomes a path segment under the niches
// directory).
func ValidateNicheName(v string) error {
	if v == "" {
		return errors.New("niche name is required")
	}
	for _, r := range v {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') &&
			!(r >= '0' && r <= '9') && r != '-' && r != '_' {
			return errors.New("must contain only alphanumeric, dash, or underscore")
		}
	}
	return nil
}

// ValidateWaitFor validates a comma-separated list of predecessor niche
// names. Empty is valid (no predecessors).
func ValidateWaitFor(v string) error {
	if v == "" {
		return nil
	}
	for _, name := range strings.Split(v, ",") {
		if err := ValidateNicheName(strings.TrimSpace(name)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDirectoryOrEmpty accepts any {{PROJECT}}/{{WORKSPACE}}-style
// thundercloud directory reference, including an empty one; it performs no
// check.
func ValidateDirectoryOrEmpty(v string) error {
	return nil
}

// ValidateFetchURL validates a git-remote fetch URL; required only when the
// caller has chosen the git-remote branch.
func ValidateFetchURL(v string) error {
	if v == "" {
		return errors.New("fetch URL is required")
	}
	if strings.Contains(v, "://") {
		if _, err := url.Parse(v); err != nil {
			return err
		}
		return nil
	}
	// scp-like syntax (git@host:path) is also accepted, as git itself does.
	if strings.Contains(v, "@") && strings.Contains(v, ":") {
		return nil
	}
	return errors.New("must be a URL or git@host:path")
}

// SplitWaitFor parses a comma-separated predecessor list into a trimmed,
// non-empty slice.
func SplitWaitFor(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
