// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bureau-foundation/bearcode/lib/translate"
)

// ColorMode selects when output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(value); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", value)
	}
}

// NewRenderer returns a lipgloss renderer for w. In auto mode colour
// is enabled only when w is a terminal.
//
// SetColorProfile is required because lipgloss.Renderer.ColorProfile()
// re-detects from the writer and ignores the termenv option.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorAuto:
		if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			profile = termenv.ANSI256
		}
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}

// TraceStyles are the per-tag styles built from a Theme on one
// renderer.
type TraceStyles struct {
	tags   map[translate.Tag]lipgloss.Style
	lossy  lipgloss.Style
	faint  lipgloss.Style
	header lipgloss.Style
}

// NewTraceStyles builds styles for theme on renderer.
func NewTraceStyles(renderer *lipgloss.Renderer, theme Theme) TraceStyles {
	styles := TraceStyles{
		tags:   make(map[translate.Tag]lipgloss.Style, 4),
		lossy:  renderer.NewStyle().Background(theme.LossyBackground),
		faint:  renderer.NewStyle().Foreground(theme.FaintText),
		header: renderer.NewStyle().Foreground(theme.HeaderForeground).Bold(true),
	}
	for _, tag := range []translate.Tag{translate.TagDict, translate.TagEncode, translate.TagDecode, translate.TagUnknown} {
		styles.tags[tag] = renderer.NewStyle().Foreground(theme.TagColor(tag))
	}
	return styles
}

// Tag returns the style for tag.
func (styles TraceStyles) Tag(tag translate.Tag) lipgloss.Style {
	if style, ok := styles.tags[tag]; ok {
		return style
	}
	return styles.tags[translate.TagUnknown]
}

// Faint returns the style for secondary text.
func (styles TraceStyles) Faint() lipgloss.Style { return styles.faint }

// Header returns the style for headings.
func (styles TraceStyles) Header() lipgloss.Style { return styles.header }

// Spans renders the display text with each segment coloured by its
// tag. Lossy segments get a background tint.
func (styles TraceStyles) Spans(segments []translate.Segment) string {
	var builder strings.Builder
	for _, segment := range segments {
		style := styles.Tag(segment.Tag)
		if segment.Lossy {
			style = style.Inherit(styles.lossy)
		}
		builder.WriteString(style.Render(segment.Text))
	}
	return builder.String()
}

// TagStrip renders one "label:text" chip per segment, separated by
// spaces.
func (styles TraceStyles) TagStrip(segments []translate.Segment) string {
	chips := make([]string, 0, len(segments))
	for _, segment := range segments {
		chips = append(chips, styles.Tag(segment.Tag).Render(segment.Tag.Label()+":"+segment.Input))
	}
	return strings.Join(chips, " ")
}

// Table writes one line per segment: kind, tag label, input, output,
// and a lossy marker.
func (styles TraceStyles) Table(w io.Writer, result translate.Result) error {
	if _, err := fmt.Fprintln(w, styles.header.Render(fmt.Sprintf("mode: %s", result.Mode))); err != nil {
		return err
	}
	for index, segment := range result.Segments {
		marker := ""
		if segment.Lossy {
			marker = styles.faint.Render(" (lossy)")
		}
		line := fmt.Sprintf("%4d  %-10s %s  %s → %s%s",
			index,
			segment.Kind,
			styles.Tag(segment.Tag).Render(segment.Tag.Label()),
			segment.Input,
			styles.Tag(segment.Tag).Render(segment.Text),
			marker,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
