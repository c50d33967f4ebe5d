// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package fsys

import (
	"context"

	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// ReadOnly wraps a FileSystem so that OpenTarget always returns (nil, nil),
// used for the thundercloud side of the engine (cumulus content is never
// written to).
type ReadOnly struct {
	Inner FileSystem
}

func (r ReadOnly) ReadDir(ctx context.Context, dir cargopath.Absolute) ([]DirEntry, error) {
	return r.Inner.ReadDir(ctx, dir)
}

func (r ReadOnly) PathType(ctx context.Context, p cargopath.Absolute) (PathType, error) {
	return r.Inner.PathType(ctx, p)
}

func (r ReadOnly) OpenSource(ctx context.Context, p cargopath.Absolute) (SourceFile, error) {
	return r.Inner.OpenSource(ctx, p)
}

func (r ReadOnly) OpenTarget(context.Context, cargopath.Absolute, WriteMode, bool) (TargetFile, error) {
	return nil, nil
}

func (r ReadOnly) GetContent(ctx context.Context, p cargopath.Absolute) (string, error) {
	return r.Inner.GetContent(ctx, p)
}

func (r ReadOnly) ReadOnly() FileSystem { return r }
