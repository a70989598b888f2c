// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the bearcode
// binary: a tree of [Command] values with pflag flag sets, structured
// help, typo suggestions for unknown commands and flags, slog logger
// construction, and [ExitError] for deliberate non-zero exits.
//
// Commands write through [Streams] rather than the process's standard
// files so the whole tree can be driven from tests.
package cli
