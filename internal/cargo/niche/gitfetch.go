// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package niche

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/gitcmd"
)

// digestOf hashes a git remote's fetch URL into a stable directory name, so
// repeated runs against the same remote reuse the same on-disk checkout.
func digestOf(fetchURL string) string {
	sum := sha256.Sum256([]byte(fetchURL))
	return hex.EncodeToString(sum[:])
}

// gitFetcher clones or pulls a GitRemoteConfig into targetDir/<digest>,
// driving gitcmd.Executor through the narrower clone-or-pull-by-digest
// sequence a thundercloud fetch needs.
type gitFetcher struct {
	exec      *gitcmd.Executor
	targetDir string
}

func newGitFetcher(targetDir string) *gitFetcher {
	return &gitFetcher{exec: gitcmd.NewExecutor(), targetDir: targetDir}
}

// fetch clones remote into <targetDir>/<digest(fetchURL)> if absent, or
// pulls the configured revision if the checkout already exists, honoring
// OnIncoming for the "already present" branch. It returns the checkout's
// absolute path on disk.
func (f *gitFetcher) fetch(ctx context.Context, remote config.GitRemoteConfig, onIncoming config.OnIncoming) (string, error) {
	digest := digestOf(remote.FetchURL)
	checkout := f.targetDir + "/" + digest

	if f.exec.IsGitRepository(ctx, checkout) {
		switch onIncoming {
		case config.OnIncomingIgnore:
			return checkout, nil
		case config.OnIncomingFail:
			return "", fmt.Errorf("niche: thundercloud checkout %s already present and on-incoming=Fail", checkout)
		case config.OnIncomingWarn, config.OnIncomingUpdate, "":
			if _, err := f.exec.Run(ctx, checkout, "fetch", "origin", remote.Revision); err != nil {
				return "", fmt.Errorf("niche: fetching %s into %s: %w", remote.FetchURL, checkout, err)
			}
			if _, err := f.exec.Run(ctx, checkout, "checkout", remote.Revision); err != nil {
				return "", fmt.Errorf("niche: checking out %s in %s: %w", remote.Revision, checkout, err)
			}
			return checkout, nil
		}
	}

	if _, err := f.exec.Run(ctx, f.targetDir, "clone", remote.FetchURL, digest); err != nil {
		return "", fmt.Errorf("niche: cloning %s into %s: %w", remote.FetchURL, checkout, err)
	}
	if remote.Revision != "" {
		if _, err := f.exec.Run(ctx, checkout, "checkout", remote.Revision); err != nil {
			return "", fmt.Errorf("niche: checking out %s in %s: %w", remote.Revision, checkout, err)
		}
	}
	return checkout, nil
}
