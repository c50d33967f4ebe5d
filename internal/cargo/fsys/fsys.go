// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package fsys abstracts directory listing, typed file open, and read-only
// wrapping behind a FileSystem capability, so the composition engine never
// touches os/io/fs directly and can be driven against an in-memory fixture
// in tests.
package fsys

import (
	"context"

	"github.com/gizzahub/cargocult/internal/cargo/path"
)

// PathType classifies what, if anything, lives at a path.
type PathType int

const (
	Missing PathType = iota
	File
	Directory
	Other
)

// WriteMode controls how OpenTarget behaves when the target already exists.
type WriteMode int

const (
	Overwrite WriteMode = iota
	WriteNew
	Ignore
)

// DirEntry describes one entry returned by ReadDir.
type DirEntry interface {
	Path() path.Absolute
	FileName() string
	IsDir() bool
}

// SourceFile is a lazy, finite, non-restartable sequence of lines.
type SourceFile interface {
	// NextLine returns the next line and true, or ("", false) at EOF.
	NextLine(ctx context.Context) (string, bool, error)
	Close() error
}

// TargetFile is a line-oriented sink; each written line is terminated with
// "\n". Real's WriteLine enqueues the line onto an internal channel drained
// by a writer goroutine, and its Close closes the channel, waits for the
// writer to finish and surfaces the first write error encountered.
// Fixture's target buffers lines in memory without a channel.
type TargetFile interface {
	WriteLine(line string) error
	Close() error
}

// FileSystem is the capability consumed by the composition engine. All
// operations are asynchronous in the sense that they may block on I/O;
// callers pass a context to allow cancellation.
type FileSystem interface {
	// ReadDir lists the immediate children of dir. Returns (nil, nil) if dir
	// does not exist (callers treat a missing side of a directory pair as an
	// empty contribution, not an error).
	ReadDir(ctx context.Context, dir path.Absolute) ([]DirEntry, error)

	// PathType reports what is at p.
	PathType(ctx context.Context, p path.Absolute) (PathType, error)

	// OpenSource opens p for line-oriented reading.
	OpenSource(ctx context.Context, p path.Absolute) (SourceFile, error)

	// OpenTarget opens p for line-oriented writing. Returns (nil, nil) when
	// mode is Ignore, or when mode is WriteNew and p already exists — this is
	// not an error. Parent directories are created as needed.
	OpenTarget(ctx context.Context, p path.Absolute, mode WriteMode, executable bool) (TargetFile, error)

	// GetContent reads all of p's lines and joins them with "\n", with a
	// trailing "\n".
	GetContent(ctx context.Context, p path.Absolute) (string, error)

	// ReadOnly returns a wrapper whose OpenTarget always returns (nil, nil).
	ReadOnly() FileSystem
}
