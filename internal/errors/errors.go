// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package errors centralizes the engine's sentinel errors, plus two small
// wrapping helpers: Wrap attaches a sentinel to an error for
// classification via errors.Is, and WrapWithMessage adds context while
// keeping the original error Is-matchable.
package errors

import "errors"

// Sentinel errors. The first group names git failure kinds; the rest are
// this engine's own error kinds.
var (
	ErrNotFound         = errors.New("not found")
	ErrNotGitRepository = errors.New("not a git repository")
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")
	ErrBranchExists     = errors.New("branch already exists")
	ErrBranchNotFound   = errors.New("branch not found")
	ErrRemoteNotFound   = errors.New("remote not found")
	ErrMergeConflict    = errors.New("merge conflict")
	ErrDetachedHead     = errors.New("detached HEAD")

	ErrConfigParse      = errors.New("config could not be parsed")
	ErrCycleOrDuplicate = errors.New("psychotropic graph rejected: cycle or duplicate")
	ErrIllegalTarget    = errors.New("illegal target name")
	ErrChannelClosed    = errors.New("orchestrator channel closed unexpectedly")
)

// wrapped pairs an original error with a sentinel target, so errors.Is
// against either the sentinel or (via errors.Unwrap) the original succeeds.
type wrapped struct {
	target error
	cause  error
}

func (w *wrapped) Error() string {
	if w.cause == nil {
		return w.target.Error()
	}
	return w.target.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() error { return w.cause }

func (w *wrapped) Is(target error) bool { return target == w.target }

// Wrap returns an error that is Is-matchable against target while
// unwrapping to err. If err is nil, target is returned unchanged (there is
// nothing to wrap). If target is nil, err is returned unchanged (nothing to
// tag it with).
func Wrap(err, target error) error {
	if err == nil {
		return target
	}
	if target == nil {
		return err
	}
	return &wrapped{target: target, cause: err}
}

// messaged adds a message prefix to err while remaining Is-matchable
// against err itself.
type messaged struct {
	msg   string
	cause error
}

func (m *messaged) Error() string { return m.msg + ": " + m.cause.Error() }
func (m *messaged) Unwrap() error { return m.cause }

// WrapWithMessage annotates err with msg, preserving err's identity for
// errors.Is. Returns nil if err is nil.
func WrapWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &messaged{msg: msg, cause: err}
}

// Is re-exports the standard library's errors.Is, so callers that already
// import this package for Wrap/WrapWithMessage do not need a second import
// just to check an error's identity.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
