// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package scheduler implements the niche orchestrator: it runs one niche
// driver per niche, respecting the psychotropic dependency graph and a
// bounded permit pool, using golang.org/x/sync's errgroup and semaphore so
// the permit count is visible as its own value rather than baked into
// errgroup's internal limiter.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/gizzahub/cargocult/internal/cargo/psychotropic"
)

// RunFunc drives a single niche (a closure over niche.Driver.Drive, in
// production).
// Its error is never fatal to the overall orchestration — it is recorded
// in the returned Result and the run continues — except for orchestrator
// bookkeeping failures (context cancellation, permit acquisition), which
// Run itself returns directly.
type RunFunc func(ctx context.Context, niche string) error

// Result is one niche's outcome, as reported back to the caller for
// summarized logging.
type Result struct {
	Niche string
	Err   error
}

// Run orchestrates idx's niches: independent() niches start immediately;
// every other niche starts only once every member of its waitFor list has
// sent its done signal. permits bounds peak concurrency across all niche
// drivers.
//
// Spawning and done-tracking are folded into a single goroutine here (the
// one below, reading doneCh) rather than split across two tasks
// communicating over a work queue: both roles mutate the same waitCount
// bookkeeping, and a single owner removes the need for a channel between
// them without changing observable ordering — spawning a niche remains
// strictly sequenced after its dependencies' done messages either way.
func Run(ctx context.Context, idx *psychotropic.Index, permits int64, runNiche RunFunc) ([]Result, error) {
	names := idx.Names()
	total := len(names)

	waitCount := make(map[string]int, total)
	for _, n := range names {
		waitCount[n] = len(idx.WaitFor(n))
	}

	sem := semaphore.NewWeighted(permits)
	g, gctx := errgroup.WithContext(ctx)

	doneCh := make(chan string, total)
	results := make([]Result, 0, total)
	var resultsMu sync.Mutex

	spawn := func(name string) {
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return fmt.Errorf("scheduler: acquiring permit for %s: %w", name, err)
			}
			defer sem.Release(1)

			err := runNiche(gctx, name)

			resultsMu.Lock()
			results = append(results, Result{Niche: name, Err: err})
			resultsMu.Unlock()

			select {
			case doneCh <- name:
			case <-gctx.Done():
				return gctx.Err()
			}
			return nil
		})
	}

	for _, n := range idx.Independent() {
		spawn(n)
	}

	finished := 0
	for finished < total {
		select {
		case name := <-doneCh:
			finished++
			for _, later := range idx.Triggers(name) {
				waitCount[later]--
				if waitCount[later] == 0 {
					spawn(later)
				}
			}
		case <-gctx.Done():
			finished = total // stop waiting; g.Wait below surfaces the cause
		}
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
