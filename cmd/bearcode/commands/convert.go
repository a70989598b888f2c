// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bearcode/cmd/bearcode/cli"
	"github.com/bureau-foundation/bearcode/lib/codec"
	"github.com/bureau-foundation/bearcode/lib/translate"
	"github.com/bureau-foundation/bearcode/lib/tui"
)

// outputFormat selects how conversion results are written.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatCBOR outputFormat = "cbor"
)

func parseOutputFormat(value string) (outputFormat, error) {
	switch format := outputFormat(value); format {
	case formatText, formatJSON, formatCBOR:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (want text, json, or cbor)", value)
	}
}

// convertParams are the flags shared by convert, encode and decode.
type convertParams struct {
	mode      string
	noDict    bool
	tokens    bool
	trace     bool
	format    string
	colorMode string
}

func (params *convertParams) bind(flagSet *pflag.FlagSet, withMode bool) {
	if withMode {
		flagSet.StringVarP(&params.mode, "mode", "m", "auto", "direction: auto, forward (cn2bear), or reverse (bear2cn)")
	}
	flagSet.BoolVar(&params.noDict, "no-dict", false, "bypass the dictionary and use only the codec")
	flagSet.BoolVar(&params.tokens, "tokens", false, "decode legacy input where every segment is separator-joined")
	flagSet.BoolVar(&params.trace, "trace", false, "colour the output by segment and list every segment")
	flagSet.StringVarP(&params.format, "format", "f", "text", "output format: text, json, or cbor")
	flagSet.StringVar(&params.colorMode, "color", "auto", "colour trace output: auto, always, or never")
}

func convertCommand(env *environment) *cli.Command {
	var params convertParams
	return &cli.Command{
		Name:    "convert",
		Summary: "Convert text, detecting the direction",
		Description: `Convert text between Chinese and bear language.

With --mode auto (the default) each input is classified by counting
Chinese characters against bear-language symbols; more Chinese
characters means forward. Text comes from the arguments, or from stdin
one line at a time when no arguments are given.`,
		Usage: "bearcode convert [flags] [text...]",
		Examples: []cli.Example{
			{Description: "Detect and convert", Command: "bearcode convert 你好"},
			{Description: "Show which segments came from the dictionary", Command: "bearcode convert --trace 你好世界"},
			{Description: "Convert a file line by line as JSON", Command: "bearcode convert --format json < input.txt"},
		},
		Flags: env.flags("convert", func(flagSet *pflag.FlagSet) { params.bind(flagSet, true) }),
		Run: env.run(func(ctx context.Context, args []string) error {
			mode, err := translate.ParseMode(params.mode)
			if err != nil {
				return err
			}
			return env.convert(args, mode, &params)
		}),
	}
}

func directionCommand(env *environment, name string, mode translate.Mode) *cli.Command {
	var params convertParams
	summary := "Convert Chinese text to bear language"
	if mode == translate.ModeReverse {
		summary = "Convert bear language to Chinese text"
	}
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   fmt.Sprintf("bearcode %s [flags] [text...]", name),
		Flags:   env.flags(name, func(flagSet *pflag.FlagSet) { params.bind(flagSet, false) }),
		Run: env.run(func(ctx context.Context, args []string) error {
			return env.convert(args, mode, &params)
		}),
	}
}

func (env *environment) convert(args []string, mode translate.Mode, params *convertParams) error {
	format, err := parseOutputFormat(params.format)
	if err != nil {
		return err
	}
	colorMode, err := tui.ParseColorMode(params.colorMode)
	if err != nil {
		return err
	}
	if params.tokens && mode == translate.ModeForward {
		return fmt.Errorf("--tokens only applies to decoding")
	}

	current, err := env.openSession(sessionOptions{})
	if err != nil {
		return err
	}

	writer := newResultWriter(env.streams.Out, format, params.trace, colorMode)
	convertOne := func(text string) error {
		result := current.convert(text, mode, !params.noDict, params.tokens)
		if result.Lossy() {
			env.logger.Warn("conversion was lossy", "input", text, "mode", result.Mode.String())
		}
		env.logger.Debug("converted",
			"mode", result.Mode.String(),
			"segments", len(result.Segments),
		)
		return writer.write(result)
	}

	if len(args) > 0 {
		return convertOne(strings.Join(args, " "))
	}
	if cli.IsTerminal(env.streams.In) {
		return fmt.Errorf("no input: pass text as arguments or pipe it on stdin")
	}

	scanner := bufio.NewScanner(env.streams.In)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := convertOne(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

// convert runs one conversion with the session's engine. tokens
// selects the separator-delimited decoder for reverse conversions.
func (current *session) convert(text string, mode translate.Mode, useDictionary, tokens bool) translate.Result {
	if mode == translate.ModeAuto {
		mode = current.engine.Detect(text)
	}
	if tokens && mode == translate.ModeReverse {
		return current.engine.DecodeTokens(text, useDictionary)
	}
	return current.engine.Convert(text, mode, useDictionary)
}

// resultWriter writes conversion results in one output format.
type resultWriter struct {
	out         io.Writer
	format      outputFormat
	trace       bool
	styles      tui.TraceStyles
	cborEncoder *cbor.Encoder
}

func newResultWriter(out io.Writer, format outputFormat, trace bool, colorMode tui.ColorMode) *resultWriter {
	return &resultWriter{
		out:         out,
		format:      format,
		trace:       trace,
		styles:      tui.NewTraceStyles(tui.NewRenderer(out, colorMode), tui.DefaultTheme),
		cborEncoder: codec.NewEncoder(out),
	}
}

// jsonResult is the JSON and CBOR rendering of a result. Segments is
// omitted unless --trace is set.
type jsonResult struct {
	Text     string              `json:"text" cbor:"text"`
	Mode     translate.Mode      `json:"mode" cbor:"mode"`
	Lossy    bool                `json:"lossy" cbor:"lossy"`
	Segments []translate.Segment `json:"segments,omitempty" cbor:"segments,omitempty"`
}

func (writer *resultWriter) write(result translate.Result) error {
	switch writer.format {
	case formatJSON, formatCBOR:
		rendered := jsonResult{Text: result.DisplayText, Mode: result.Mode, Lossy: result.Lossy()}
		if writer.trace {
			rendered.Segments = result.Segments
		}
		if writer.format == formatJSON {
			return cli.WriteJSON(writer.out, rendered)
		}
		if err := writer.cborEncoder.Encode(rendered); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return nil
	}

	if !writer.trace {
		_, err := fmt.Fprintln(writer.out, result.DisplayText)
		return err
	}
	if _, err := fmt.Fprintln(writer.out, writer.styles.Spans(result.Segments)); err != nil {
		return err
	}
	return writer.styles.Table(writer.out, result)
}
