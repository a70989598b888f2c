// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/bearcode/cmd/bearcode/cli"
	"github.com/bureau-foundation/bearcode/lib/translate"
	"github.com/bureau-foundation/bearcode/lib/version"
)

// Root builds the complete bearcode command tree writing to streams.
func Root(streams cli.Streams) *cli.Command {
	env := newEnvironment(streams)
	return &cli.Command{
		Name: "bearcode",
		Description: `bearcode: convert between Chinese text and bear language.

Dictionary phrases are substituted directly; every other character is
written as ten symbols from the 啊 哒 . 。 alphabet, with + between
consecutive codec units.`,
		HelpOutput: streams.Err,
		Subcommands: []*cli.Command{
			convertCommand(env),
			directionCommand(env, "encode", translate.ModeForward),
			directionCommand(env, "decode", translate.ModeReverse),
			dictCommand(env),
			liveCommand(env),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string) error {
					_, err := fmt.Fprintf(streams.Out, "bearcode %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Convert in whichever direction the text looks like",
				Command:     "bearcode convert 你好",
			},
			{
				Description: "Decode bear language piped from another program",
				Command:     "echo '啊啊哒啊。。哒.啊啊+啊啊哒哒.哒哒。。哒' | bearcode decode",
			},
			{
				Description: "Use a specific dictionary and show segment provenance",
				Command:     "bearcode convert --dictionary ./dictionary.json --trace 你好世界",
			},
			{
				Description: "Compile a dictionary into a snapshot",
				Command:     "bearcode dict compile --dictionary ./dictionary.json --output dictionary.bdict",
			},
			{
				Description: "Open the interactive translator",
				Command:     "bearcode live",
			},
		},
	}
}
