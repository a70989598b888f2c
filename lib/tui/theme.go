// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/bearcode/lib/translate"
)

// Theme defines the colour palette for bearcode's terminal output. All
// colours use ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Segment tag colours.
	TagDict    lipgloss.Color
	TagEncode  lipgloss.Color
	TagDecode  lipgloss.Color
	TagUnknown lipgloss.Color

	// LossyBackground tints segments whose output degraded.
	LossyBackground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	WarningText      lipgloss.Color
}

// TagColor returns the colour for a segment tag.
func (theme Theme) TagColor(tag translate.Tag) lipgloss.Color {
	switch tag {
	case translate.TagDict:
		return theme.TagDict
	case translate.TagEncode:
		return theme.TagEncode
	case translate.TagDecode:
		return theme.TagDecode
	default:
		return theme.TagUnknown
	}
}

// DefaultTheme is the built-in dark-terminal colour scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	TagDict:    lipgloss.Color("114"), // green
	TagEncode:  lipgloss.Color("75"),  // blue
	TagDecode:  lipgloss.Color("141"), // light purple
	TagUnknown: lipgloss.Color("245"), // gray

	LossyBackground: lipgloss.Color("52"), // dark red tint

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	WarningText:      lipgloss.Color("208"), // orange
}
