// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bearcode/cmd/bearcode/cli"
	"github.com/bureau-foundation/bearcode/cmd/bearcode/live"
	"github.com/bureau-foundation/bearcode/lib/reload"
	"github.com/bureau-foundation/bearcode/lib/translate"
	"github.com/bureau-foundation/bearcode/lib/tui"
)

func liveCommand(env *environment) *cli.Command {
	var modeName string
	var noDict, noReload bool
	return &cli.Command{
		Name:    "live",
		Summary: "Interactive translator",
		Description: `Open an interactive translator. Text is converted as you type.

Tab cycles the mode (auto, forward, reverse) and ctrl+d toggles the
dictionary. When reload is enabled in the configuration, edits to the
dictionary file are picked up while the translator runs.`,
		Usage: "bearcode live [flags]",
		Flags: env.flags("live", func(flagSet *pflag.FlagSet) {
			flagSet.StringVarP(&modeName, "mode", "m", "auto", "initial direction: auto, forward, or reverse")
			flagSet.BoolVar(&noDict, "no-dict", false, "start with the dictionary switched off")
			flagSet.BoolVar(&noReload, "no-reload", false, "do not watch the dictionary file")
		}),
		Run: env.run(func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			mode, err := translate.ParseMode(modeName)
			if err != nil {
				return err
			}
			if !cli.IsTerminal(env.streams.In) || !cli.IsTerminal(env.streams.Out) {
				return fmt.Errorf("live needs an interactive terminal; use convert for pipes")
			}

			logHandler := live.NewLogHandler(env.level)
			var program *tea.Program
			current, err := env.openSession(sessionOptions{
				Logger: slog.New(logHandler),
				OnChange: func(event reload.Event) {
					program.Send(live.DictionaryChangedMsg{Event: event})
				},
			})
			if err != nil {
				return err
			}

			model := live.NewModel(current.engine, live.Options{
				Mode:           mode,
				UseDictionary:  !noDict,
				Renderer:       tui.NewRenderer(env.streams.Out, tui.ColorAuto),
				DictionaryName: current.config.Dictionary.Path,
			})
			program = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(env.streams.In),
				tea.WithOutput(env.streams.Out),
			)
			logHandler.SetProgram(program)

			watchContext, stopWatching := context.WithCancel(ctx)
			defer stopWatching()
			if current.watcher != nil && current.config.Reload.Enabled && !noReload {
				go current.watcher.Run(watchContext)
			}

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running live translator: %w", err)
			}
			return nil
		}),
	}
}
