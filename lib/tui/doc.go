// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the terminal styling shared by bearcode's trace
// output and the live translator: the colour theme for segment tags
// and a renderer that draws a conversion result as tagged, coloured
// spans.
//
// Colour output goes through a lipgloss renderer bound to a termenv
// profile chosen by [ColorMode], so piping `bearcode convert --trace`
// into a file produces plain text while a terminal gets colours.
package tui
