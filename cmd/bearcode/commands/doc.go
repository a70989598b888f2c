// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the bearcode command tree: convert, encode,
// decode, the dict tools, and the live translator.
//
// Every command shares one [environment]: the I/O streams, the logger
// and the global --config, --dictionary and --verbose flags. A command
// that converts text opens a session, which loads the configuration,
// builds the engine, and loads the dictionary through a reload watcher
// so one-shot and long-running commands share the same load path.
package commands
