// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for bearcode.
//
// Configuration comes from a single YAML file named by:
//   - the BEARCODE_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// The file is optional. [Default] is a complete configuration that
// reproduces the historical translator: the 啊/哒/./。 alphabet, '+'
// between codec units, 了 elided, CJK Unified Ideographs as the source
// script. A file only needs the keys it changes.
//
// The file may contain environment-specific sections (development,
// production) whose fields override the base values when the
// environment matches. ${HOME} and ${VAR:-default} are expanded in
// paths.
package config
