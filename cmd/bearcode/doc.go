// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// bearcode converts between Chinese text and bear language from the
// command line. See "bearcode --help" for the command tree.
package main
