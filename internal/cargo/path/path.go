// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package path provides small value types distinguishing absolute, relative,
// and single-component filesystem paths, so composition mistakes (joining
// two absolute paths, treating a multi-segment string as a bolt base name)
// are caught at construction time instead of at I/O time.
package path

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Absolute is a path rooted at the filesystem root. The zero value is not
// valid; use NewAbsolute or Join.
type Absolute struct {
	p string
}

// Relative is a path that is meaningful only when appended to an Absolute.
type Relative struct {
	p string
}

// Single is a single path component: no separators, not "." or "..".
type Single struct {
	c string
}

// NewAbsolute validates that p is rooted and returns an Absolute.
func NewAbsolute(p string) (Absolute, error) {
	clean := filepath.Clean(p)
	if !filepath.IsAbs(clean) {
		return Absolute{}, fmt.Errorf("path: %q is not absolute", p)
	}
	return Absolute{p: clean}, nil
}

// MustAbsolute is NewAbsolute but panics on error; reserved for package-level
// constants and tests where the input is a compile-time literal.
func MustAbsolute(p string) Absolute {
	a, err := NewAbsolute(p)
	if err != nil {
		panic(err)
	}
	return a
}

// NewRelative validates that p is not rooted and returns a Relative.
func NewRelative(p string) (Relative, error) {
	clean := filepath.Clean(p)
	if filepath.IsAbs(clean) {
		return Relative{}, fmt.Errorf("path: %q is absolute, expected relative", p)
	}
	return Relative{p: clean}, nil
}

// MustRelative is NewRelative but panics on error; reserved for
// package-level constants and tests where the input is a compile-time
// literal.
func MustRelative(p string) Relative {
	r, err := NewRelative(p)
	if err != nil {
		panic(err)
	}
	return r
}

// TryNewSingle validates that c is exactly one path component: it contains
// no separator and is neither "." nor "..".
func TryNewSingle(c string) (Single, error) {
	if c == "" || c == "." || c == ".." {
		return Single{}, fmt.Errorf("path: %q is not a single component", c)
	}
	if strings.ContainsRune(c, filepath.Separator) || strings.ContainsRune(c, '/') {
		return Single{}, fmt.Errorf("path: %q contains a separator", c)
	}
	return Single{c: c}, nil
}

// String returns the underlying OS path string.
func (a Absolute) String() string { return a.p }

// String returns the underlying OS path string.
func (r Relative) String() string { return r.p }

// String returns the component text.
func (s Single) String() string { return s.c }

// Join appends a Relative onto this Absolute, producing a new Absolute.
func (a Absolute) Join(r Relative) Absolute {
	return Absolute{p: filepath.Join(a.p, r.p)}
}

// JoinSingle appends a single component onto this Absolute.
func (a Absolute) JoinSingle(s Single) Absolute {
	return Absolute{p: filepath.Join(a.p, s.c)}
}

// Parent returns the Absolute one level up. Calling Parent on the root
// returns the root again (matches filepath.Dir's own fixed point).
func (a Absolute) Parent() Absolute {
	return Absolute{p: filepath.Dir(a.p)}
}

// FileName returns the final path component.
func (a Absolute) FileName() string {
	return filepath.Base(a.p)
}

// Join appends one Relative onto another, producing a new Relative.
func (r Relative) Join(other Relative) Relative {
	return Relative{p: filepath.Join(r.p, other.p)}
}

// JoinSingle appends a single component onto this Relative.
func (r Relative) JoinSingle(s Single) Relative {
	return Relative{p: filepath.Join(r.p, s.c)}
}

// IsEmpty reports whether the relative path refers to "." (the directory
// it is relative to, with no further descent).
func (r Relative) IsEmpty() bool {
	return r.p == "." || r.p == ""
}

// RelativeFromSingle promotes a Single into a one-component Relative.
func RelativeFromSingle(s Single) Relative {
	return Relative{p: s.c}
}

// RelativeRoot is the empty relative path ("."), the identity for Join.
var RelativeRoot = Relative{p: "."}
