// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds helpers shared by bearcode tests.
//
// [RequireReceive] bounds a channel receive with a wall-clock timeout,
// so that a broken watcher fails the test instead of hanging it. It is
// the only real timeout in the suite. [WriteFile] and [WriteDictionary]
// put fixtures into a per-test temporary directory.
//
// Helpers call t.Fatalf on failure.
package testutil
