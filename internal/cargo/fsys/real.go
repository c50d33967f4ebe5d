// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package fsys

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// Real is a FileSystem backed directly by the local filesystem, using the
// defensive os.Stat / errors.Is(err, fs.ErrNotExist) idiom throughout.
type Real struct{}

// NewReal returns a FileSystem backed by the OS.
func NewReal() FileSystem { return Real{} }

type realDirEntry struct {
	path  cargopath.Absolute
	entry os.DirEntry
}

func (e realDirEntry) Path() cargopath.Absolute { return e.path }
func (e realDirEntry) FileName() string         { return e.entry.Name() }
func (e realDirEntry) IsDir() bool              { return e.entry.IsDir() }

func (Real) ReadDir(_ context.Context, dir cargopath.Absolute) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		abs, joinErr := cargopath.NewAbsolute(filepath.Join(dir.String(), e.Name()))
		if joinErr != nil {
			continue
		}
		out = append(out, realDirEntry{path: abs, entry: e})
	}
	return out, nil
}

func (Real) PathType(_ context.Context, p cargopath.Absolute) (PathType, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Missing, nil
		}
		return Missing, fmt.Errorf("stat %s: %w", p, err)
	}
	switch {
	case info.IsDir():
		return Directory, nil
	case info.Mode().IsRegular():
		return File, nil
	default:
		return Other, nil
	}
}

type realSourceFile struct {
	f       *os.File
	scanner *bufio.Scanner
}

func (Real) OpenSource(_ context.Context, p cargopath.Absolute) (SourceFile, error) {
	f, err := os.Open(p.String())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", p, err)
	}
	return &realSourceFile{f: f, scanner: bufio.NewScanner(f)}, nil
}

func (s *realSourceFile) NextLine(_ context.Context) (string, bool, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func (s *realSourceFile) Close() error { return s.f.Close() }

// realTargetFile implements a channel-and-writer-task pattern: WriteLine
// enqueues, Close drains and awaits the writer.
type realTargetFile struct {
	lines   chan string
	done    chan struct{}
	wg      sync.WaitGroup
	writeMu sync.Mutex
	err     error
}

func newRealTargetFile(f *os.File) *realTargetFile {
	t := &realTargetFile{
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer f.Close()
		w := bufio.NewWriter(f)
		for line := range t.lines {
			if _, err := w.WriteString(line); err != nil {
				t.recordErr(err)
				continue
			}
			if _, err := w.WriteString("\n"); err != nil {
				t.recordErr(err)
			}
		}
		if err := w.Flush(); err != nil {
			t.recordErr(err)
		}
	}()
	return t
}

func (t *realTargetFile) recordErr(err error) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if t.err == nil {
		t.err = err
	}
}

func (t *realTargetFile) WriteLine(line string) error {
	select {
	case t.lines <- line:
		return nil
	case <-t.done:
		return fmt.Errorf("fsys: write to closed target")
	}
}

func (t *realTargetFile) Close() error {
	close(t.lines)
	close(t.done)
	t.wg.Wait()
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.err
}

func (Real) OpenTarget(_ context.Context, p cargopath.Absolute, mode WriteMode, executable bool) (TargetFile, error) {
	if mode == Ignore {
		return nil, nil
	}
	if mode == WriteNew {
		if _, err := os.Stat(p.String()); err == nil {
			return nil, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(p.String()), 0o755); err != nil {
		return nil, fmt.Errorf("creating parent dirs for %s: %w", p, err)
	}
	perm := os.FileMode(0o644)
	if executable {
		perm = 0o755
	}
	f, err := os.OpenFile(p.String(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("opening target %s: %w", p, err)
	}
	return newRealTargetFile(f), nil
}

func (r Real) GetContent(ctx context.Context, p cargopath.Absolute) (string, error) {
	src, err := r.OpenSource(ctx, p)
	if err != nil {
		return "", err
	}
	defer src.Close()
	var b strings.Builder
	for {
		line, ok, err := src.NextLine(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r Real) ReadOnly() FileSystem { return ReadOnly{Inner: r} }
