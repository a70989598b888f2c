// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package live

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/bearcode/lib/reload"
	"github.com/bureau-foundation/bearcode/lib/translate"
	"github.com/bureau-foundation/bearcode/lib/tui"
)

// DefaultDebounce is the delay between the last edit and the
// conversion it triggers.
const DefaultDebounce = 300 * time.Millisecond

// inputHeight is the number of text rows in the input area.
const inputHeight = 5

// Converter is the subset of translate.Engine the model uses.
type Converter interface {
	Convert(text string, mode translate.Mode, useDictionary bool) translate.Result
}

// Options configures a Model.
type Options struct {
	// Mode is the initial direction. ModeAuto detects per conversion.
	Mode translate.Mode

	// UseDictionary is the initial dictionary toggle.
	UseDictionary bool

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Renderer draws the styles. Nil uses lipgloss's default renderer.
	Renderer *lipgloss.Renderer

	// DictionaryName is shown in the header, typically the file path.
	DictionaryName string
}

// convertMsg asks for a conversion. Only the one matching the model's
// current sequence runs; older ones were superseded by later edits.
type convertMsg struct {
	sequence int
}

// DictionaryChangedMsg reports a dictionary reload. The model
// reconverts its input against the new store.
type DictionaryChangedMsg struct {
	Event reload.Event
}

// Model is the bubbletea model for the live translator.
type Model struct {
	converter Converter
	keys      KeyMap
	debounce  time.Duration

	renderer *lipgloss.Renderer
	styles   tui.TraceStyles
	theme    tui.Theme

	input  textarea.Model
	output viewport.Model

	mode           translate.Mode
	useDictionary  bool
	dictionaryName string
	result         translate.Result
	sequence       int

	logLine     string
	logLevel    slog.Level
	logSequence int

	width  int
	height int
}

// NewModel creates a live translator over converter.
func NewModel(converter Converter, options Options) Model {
	renderer := options.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	debounce := options.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	input := textarea.New()
	input.Placeholder = "输入中文或熊语…"
	input.ShowLineNumbers = false
	input.SetHeight(inputHeight)
	input.Focus()

	return Model{
		converter:      converter,
		keys:           DefaultKeyMap,
		debounce:       debounce,
		renderer:       renderer,
		styles:         tui.NewTraceStyles(renderer, tui.DefaultTheme),
		theme:          tui.DefaultTheme,
		input:          input,
		output:         viewport.New(0, 0),
		mode:           options.Mode,
		useDictionary:  options.UseDictionary,
		dictionaryName: options.DictionaryName,
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textarea.Blink
}

// Result returns the most recent conversion.
func (model Model) Result() translate.Result {
	return model.result
}

// Mode returns the selected direction, which may be ModeAuto.
func (model Model) Mode() translate.Mode {
	return model.mode
}

// UseDictionary reports whether the dictionary toggle is on.
func (model Model) UseDictionary() bool {
	return model.useDictionary
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.layout()
		model.render()
		return model, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.CycleMode):
			model.mode = nextMode(model.mode)
			model.convert()
			return model, nil
		case key.Matches(message, model.keys.ToggleDictionary):
			model.useDictionary = !model.useDictionary
			model.convert()
			return model, nil
		case key.Matches(message, model.keys.ScrollUp, model.keys.ScrollDown):
			var command tea.Cmd
			model.output, command = model.output.Update(message)
			return model, command
		}

		before := model.input.Value()
		var command tea.Cmd
		model.input, command = model.input.Update(message)
		if model.input.Value() == before {
			return model, command
		}
		model.sequence++
		return model, tea.Batch(command, model.scheduleConvert())

	case convertMsg:
		if message.sequence == model.sequence {
			model.convert()
		}
		return model, nil

	case DictionaryChangedMsg:
		if message.Event.Err == nil {
			model.convert()
		}
		return model, nil

	case logRecordMsg:
		model.logLine = message.Summary
		model.logLevel = message.Level
		model.logSequence++
		sequence := model.logSequence
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{Sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.Sequence == model.logSequence {
			model.logLine = ""
		}
		return model, nil
	}

	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

func (model Model) scheduleConvert() tea.Cmd {
	sequence := model.sequence
	return tea.Tick(model.debounce, func(time.Time) tea.Msg {
		return convertMsg{sequence: sequence}
	})
}

// nextMode cycles auto → forward → reverse → auto.
func nextMode(mode translate.Mode) translate.Mode {
	switch mode {
	case translate.ModeAuto:
		return translate.ModeForward
	case translate.ModeForward:
		return translate.ModeReverse
	default:
		return translate.ModeAuto
	}
}

func (model *Model) convert() {
	text := model.input.Value()
	if text == "" {
		model.result = translate.Result{}
	} else {
		model.result = model.converter.Convert(text, model.mode, model.useDictionary)
	}
	model.render()
}

// layout sizes the input and output areas for the window.
func (model *Model) layout() {
	model.input.SetWidth(max(model.width-2, 1))

	// Header, input, divider, tag strip, status line.
	chrome := 1 + inputHeight + 1 + 1 + 1
	model.output.Width = max(model.width, 1)
	model.output.Height = max(model.height-chrome, 1)
}

// render rebuilds the output viewport content from the current result.
func (model *Model) render() {
	if model.output.Width <= 0 {
		return
	}
	spans := model.styles.Spans(model.result.Segments)
	model.output.SetContent(model.renderer.NewStyle().Width(model.output.Width).Render(spans))
}

// View implements tea.Model.
func (model Model) View() string {
	if model.width == 0 {
		return ""
	}

	sections := []string{
		model.header(),
		model.input.View(),
		model.renderer.NewStyle().Foreground(model.theme.BorderColor).Render(strings.Repeat("─", model.width)),
		model.output.View(),
		model.truncate(model.styles.TagStrip(model.result.Segments)),
		model.statusLine(),
	}
	return strings.Join(sections, "\n")
}

func (model Model) header() string {
	mode := model.mode.String()
	if model.mode == translate.ModeAuto && model.result.Segments != nil {
		mode = fmt.Sprintf("auto → %s", model.result.Mode)
	}
	dictionary := "off"
	if model.useDictionary {
		dictionary = "on"
		if model.dictionaryName != "" {
			dictionary = "on (" + model.dictionaryName + ")"
		}
	}
	text := fmt.Sprintf("bearcode  mode: %s  dictionary: %s", mode, dictionary)
	if model.result.Lossy() {
		text += "  lossy"
	}
	return model.styles.Header().Render(model.truncate(text))
}

func (model Model) statusLine() string {
	if model.logLine != "" {
		color := model.theme.FaintText
		if model.logLevel >= slog.LevelWarn {
			color = model.theme.WarningText
		}
		return model.renderer.NewStyle().Foreground(color).Render(model.truncate(model.logLine))
	}

	var parts []string
	for _, binding := range model.keys.bindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return model.renderer.NewStyle().Foreground(model.theme.HelpText).Render(model.truncate(strings.Join(parts, " · ")))
}

// truncate cuts text to the window width, counting display cells.
func (model Model) truncate(text string) string {
	if ansi.StringWidth(text) <= model.width {
		return text
	}
	return ansi.Truncate(text, model.width, "…")
}
