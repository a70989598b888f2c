// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package live

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/bearcode/lib/dictionary"
	"github.com/bureau-foundation/bearcode/lib/reload"
	"github.com/bureau-foundation/bearcode/lib/translate"
	"github.com/bureau-foundation/bearcode/lib/tui"
)

func testModel(t *testing.T, entries ...dictionary.Entry) (Model, *dictionary.Holder) {
	t.Helper()
	store, _ := dictionary.Build(entries, dictionary.Options{Separator: translate.DefaultSeparator})
	holder := dictionary.NewHolder(store)
	engine, err := translate.New(holder, translate.Options{})
	if err != nil {
		t.Fatalf("translate.New() error = %v", err)
	}

	model := NewModel(engine, Options{
		UseDictionary: true,
		Renderer:      tui.NewRenderer(&bytes.Buffer{}, tui.ColorNever),
	})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), holder
}

func typeText(t *testing.T, model Model, text string) (Model, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model), command
}

func flush(model Model) Model {
	updated, _ := model.Update(convertMsg{sequence: model.sequence})
	return updated.(Model)
}

const unitHao = "啊啊哒哒.哒哒。。哒"
const unitNi = "啊啊哒啊。。哒.啊啊"

func TestTypingSchedulesConversion(t *testing.T) {
	model, _ := testModel(t, dictionary.Entry{Key: "你", Target: "啊哒"})

	model, command := typeText(t, model, "你好")
	if command == nil {
		t.Fatal("an edit should schedule a conversion")
	}
	if model.Result().DisplayText != "" {
		t.Fatalf("conversion ran before the debounce: %q", model.Result().DisplayText)
	}

	model = flush(model)
	if got, want := model.Result().DisplayText, "啊哒"+unitHao; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
	if model.Result().Mode != translate.ModeForward {
		t.Errorf("auto mode resolved to %v, want forward", model.Result().Mode)
	}
}

func TestStaleConversionIsIgnored(t *testing.T) {
	model, _ := testModel(t)

	model, _ = typeText(t, model, "你")
	stale := model.sequence
	model, _ = typeText(t, model, "好")

	updated, _ := model.Update(convertMsg{sequence: stale})
	model = updated.(Model)
	if model.Result().DisplayText != "" {
		t.Fatalf("a superseded conversion ran: %q", model.Result().DisplayText)
	}

	model = flush(model)
	if got, want := model.Result().DisplayText, unitNi+"+"+unitHao; got != want {
		t.Errorf("DisplayText = %q, want %q", got, want)
	}
}

func TestCycleModeConvertsImmediately(t *testing.T) {
	model, _ := testModel(t)
	model, _ = typeText(t, model, "你好")

	modes := []translate.Mode{translate.ModeForward, translate.ModeReverse, translate.ModeAuto}
	for _, want := range modes {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
		model = updated.(Model)
		if model.Mode() != want {
			t.Fatalf("Mode() = %v, want %v", model.Mode(), want)
		}
		if model.Result().Segments == nil {
			t.Fatalf("mode %v: switching modes should convert without waiting", want)
		}
	}

	// In reverse mode CJK text that is not bear language passes through.
	model.mode = translate.ModeReverse
	model.convert()
	if model.Result().DisplayText != "你好" {
		t.Errorf("reverse DisplayText = %q, want passthrough", model.Result().DisplayText)
	}
}

func TestToggleDictionary(t *testing.T) {
	model, _ := testModel(t, dictionary.Entry{Key: "你", Target: "啊哒"})
	model, _ = typeText(t, model, "你好")
	model = flush(model)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model = updated.(Model)
	if model.UseDictionary() {
		t.Fatal("ctrl+d should turn the dictionary off")
	}
	if got, want := model.Result().DisplayText, unitNi+"+"+unitHao; got != want {
		t.Errorf("DisplayText without dictionary = %q, want %q", got, want)
	}
	for _, segment := range model.Result().Segments {
		if segment.Kind != translate.KindCodec {
			t.Errorf("segment %+v should be a codec segment with the dictionary off", segment)
		}
	}
}

func TestDictionaryChangedReconverts(t *testing.T) {
	model, holder := testModel(t)
	model, _ = typeText(t, model, "好")
	model = flush(model)
	if model.Result().DisplayText != unitHao {
		t.Fatalf("DisplayText = %q, want codec unit", model.Result().DisplayText)
	}

	store, _ := dictionary.Build([]dictionary.Entry{{Key: "好", Target: "哒哒"}}, dictionary.Options{})
	holder.Swap(store)

	updated, _ := model.Update(DictionaryChangedMsg{Event: reload.Event{}})
	model = updated.(Model)
	if model.Result().DisplayText != "哒哒" {
		t.Errorf("DisplayText after reload = %q, want 哒哒", model.Result().DisplayText)
	}
}

func TestView(t *testing.T) {
	model, _ := testModel(t, dictionary.Entry{Key: "你", Target: "啊哒"})
	model, _ = typeText(t, model, "你好")
	model = flush(model)

	view := model.View()
	for _, want := range []string{
		"mode: auto → forward",
		"dictionary: on",
		"词典:你 编码:好",
		"tab mode",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	engine, err := translate.New(dictionary.Empty(), translate.Options{})
	if err != nil {
		t.Fatalf("translate.New() error = %v", err)
	}
	model := NewModel(engine, Options{})
	if view := model.View(); view != "" {
		t.Errorf("View() before the first WindowSizeMsg = %q, want empty", view)
	}
}

func TestLogRecordFades(t *testing.T) {
	model, _ := testModel(t)

	updated, command := model.Update(logRecordMsg{Summary: "dictionary loaded (entries=3)"})
	model = updated.(Model)
	if command == nil {
		t.Fatal("a log record should schedule its fade")
	}
	if !strings.Contains(model.View(), "dictionary loaded (entries=3)") {
		t.Errorf("status line should show the log record:\n%s", model.View())
	}

	// A fade for an older record leaves the newer one in place.
	updated, _ = model.Update(logRecordFadeMsg{Sequence: model.logSequence - 1})
	model = updated.(Model)
	if model.logLine == "" {
		t.Error("stale fade cleared the current record")
	}

	updated, _ = model.Update(logRecordFadeMsg{Sequence: model.logSequence})
	model = updated.(Model)
	if model.logLine != "" {
		t.Errorf("logLine = %q after fade, want empty", model.logLine)
	}
	if !strings.Contains(model.View(), "esc quit") {
		t.Error("help line should return after the fade")
	}
}

func TestQuit(t *testing.T) {
	model, _ := testModel(t)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if command == nil {
		t.Fatal("esc should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg, got %T", command())
	}
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		from, want translate.Mode
	}{
		{translate.ModeAuto, translate.ModeForward},
		{translate.ModeForward, translate.ModeReverse},
		{translate.ModeReverse, translate.ModeAuto},
	}
	for _, test := range tests {
		if got := nextMode(test.from); got != test.want {
			t.Errorf("nextMode(%v) = %v, want %v", test.from, got, test.want)
		}
	}
}
