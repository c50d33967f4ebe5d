// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package wizard implements the interactive niche/psychotropic authoring
// flow behind `cargocult wizard`: a form (github.com/charmbracelet/huh)
// collects a niche name, its wait-for predecessors, and its
// UseThundercloudConfig, then a live status screen
// (github.com/charmbracelet/bubbletea) shows the run as it happens.
package wizard
