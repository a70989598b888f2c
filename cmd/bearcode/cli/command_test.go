// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "bearcode",
		Subcommands: []*Command{
			{
				Name: "encode",
				Run: func(_ context.Context, args []string) error {
					called = "encode"
					return nil
				},
			},
			{
				Name: "decode",
				Run: func(_ context.Context, args []string) error {
					called = "decode"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"decode"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "decode" {
		t.Errorf("dispatched to %q, want %q", called, "decode")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "bearcode",
		Subcommands: []*Command{
			{
				Name: "dict",
				Subcommands: []*Command{
					{
						Name: "lookup",
						Run: func(_ context.Context, args []string) error {
							called = "dict lookup"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"dict", "lookup", "你好"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "dict lookup" {
		t.Errorf("dispatched to %q, want %q", called, "dict lookup")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "你好" {
		t.Errorf("args = %v, want [你好]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var mode string
	var text string

	command := &Command{
		Name: "convert",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			flagSet.StringVar(&mode, "mode", "auto", "direction")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				text = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"你好", "--mode", "forward"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if mode != "forward" {
		t.Errorf("mode = %q, want %q", mode, "forward")
	}
	if text != "你好" {
		t.Errorf("text = %q, want %q", text, "你好")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "convert",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			flagSet.Bool("no-dict", false, "codec only")
			flagSet.String("format", "text", "output format")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--no-dcit"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --no-dict") {
		t.Errorf("error = %q, want suggestion for '--no-dict'", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "convert",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			flagSet.Bool("trace", false, "show segments")
			return flagSet
		},
		Run: func(_ context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "bearcode",
		Subcommands: []*Command{
			{Name: "convert"},
			{Name: "encode"},
			{Name: "decode"},
		},
	}

	err := root.Execute(context.Background(), []string{"encdoe"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "encode"`) {
		t.Errorf("error = %q, want suggestion for 'encode'", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			var help bytes.Buffer
			root := &Command{
				Name:       "bearcode",
				Summary:    "Bear language transcoder",
				HelpOutput: &help,
				Subcommands: []*Command{
					{Name: "convert", Summary: "Convert text"},
				},
			}

			if err := root.Execute(context.Background(), []string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
			if !strings.Contains(help.String(), "convert") {
				t.Errorf("help output missing subcommand listing:\n%s", help.String())
			}
		})
	}
}

func TestCommand_Execute_HelpAfterFlags(t *testing.T) {
	var help bytes.Buffer
	ran := false
	root := &Command{
		Name:       "bearcode",
		HelpOutput: &help,
		Subcommands: []*Command{
			{
				Name: "convert",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
					flagSet.Bool("trace", false, "show segments")
					return flagSet
				},
				Run: func(_ context.Context, args []string) error {
					ran = true
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"convert", "--trace", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if ran {
		t.Error("Run should not be called when --help is given")
	}
	if !strings.Contains(help.String(), "--trace") {
		t.Errorf("help output should list flags:\n%s", help.String())
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name:       "bearcode",
		HelpOutput: &bytes.Buffer{},
		Subcommands: []*Command{
			{Name: "convert", Summary: "Convert text"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "bearcode",
		Description: "Bear language transcoder.",
		Subcommands: []*Command{
			{Name: "convert", Summary: "Convert text in either direction"},
			{Name: "dict", Summary: "Inspect the dictionary"},
		},
		Examples: []Example{
			{Description: "Encode a greeting", Command: "bearcode encode 你好"},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Bear language transcoder.",
		"Usage:\n  bearcode <command> [flags]",
		"convert",
		"Inspect the dictionary",
		"# Encode a greeting",
		"bearcode encode 你好",
		"Run 'bearcode <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestCommand_FullNameIncludesParents(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:       "bearcode",
		HelpOutput: &help,
		Subcommands: []*Command{
			{
				Name:        "dict",
				Subcommands: []*Command{{Name: "stats", Run: func(context.Context, []string) error { return nil }}},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"dict", "stats", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(help.String(), "bearcode dict stats") {
		t.Errorf("help should show the full command path:\n%s", help.String())
	}
}
