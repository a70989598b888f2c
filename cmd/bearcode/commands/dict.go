// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bearcode/cmd/bearcode/cli"
	"github.com/bureau-foundation/bearcode/lib/dictfile"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
	"github.com/bureau-foundation/bearcode/lib/search"
)

func dictCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "dict",
		Summary: "Inspect, search and compile the dictionary",
		Description: `Inspect, search and compile the dictionary.

The dictionary is the file named by --dictionary, or dictionary.path in
the configuration. JSON (with comments), YAML and compiled snapshots are
accepted; the format is detected from the content and extension.`,
		Subcommands: []*cli.Command{
			dictStatsCommand(env),
			dictLookupCommand(env),
			dictSearchCommand(env),
			dictCompileCommand(env),
		},
	}
}

// loadedDictionary is a dictionary file with the store built from it.
type loadedDictionary struct {
	source *dictfile.Source
	store  *dictionary.Store
	report dictionary.Report
}

// loadDictionary loads the configured dictionary. Unlike a conversion
// session, a failure here is an error: the dict tools have nothing to
// fall back to.
func (env *environment) loadDictionary() (*loadedDictionary, error) {
	cfg, err := env.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Dictionary.Path == "" {
		return nil, fmt.Errorf("no dictionary configured (use --dictionary or dictionary.path)")
	}
	store, report, source, err := dictfile.Build(cfg.Dictionary.Path, cfg.DictionaryOptions())
	if err != nil {
		return nil, err
	}
	env.logger.Debug("dictionary built",
		"path", source.Path,
		"format", source.Format.String(),
		"fingerprint", source.Fingerprint.Short(),
		"entries", report.Loaded,
	)
	return &loadedDictionary{source: source, store: store, report: report}, nil
}

// dictStats is the JSON shape of "dict stats".
type dictStats struct {
	Path            string            `json:"path"`
	Format          string            `json:"format"`
	Fingerprint     dictfile.Hash     `json:"fingerprint"`
	Origin          dictfile.Hash     `json:"origin"`
	SourceEntries   int               `json:"source_entries"`
	MaxKeyLength    int               `json:"max_key_length"`
	MaxTargetLength int               `json:"max_target_length"`
	Report          dictionary.Report `json:"report"`
}

func dictStatsCommand(env *environment) *cli.Command {
	var outputJSON bool
	return &cli.Command{
		Name:    "stats",
		Summary: "Show what was loaded from the dictionary",
		Usage:   "bearcode dict stats [flags]",
		Flags: env.flags("stats", func(flagSet *pflag.FlagSet) {
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
		}),
		Run: env.run(func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			loaded, err := env.loadDictionary()
			if err != nil {
				return err
			}

			stats := dictStats{
				Path:            loaded.source.Path,
				Format:          loaded.source.Format.String(),
				Fingerprint:     loaded.source.Fingerprint,
				Origin:          loaded.source.Origin,
				SourceEntries:   len(loaded.source.Entries),
				MaxKeyLength:    loaded.store.MaxLength(),
				MaxTargetLength: loaded.store.MaxTargetLength(),
				Report:          loaded.report,
			}
			if outputJSON {
				return cli.WriteJSON(env.streams.Out, stats)
			}

			tw := tabwriter.NewWriter(env.streams.Out, 2, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "path:\t%s\n", stats.Path)
			fmt.Fprintf(tw, "format:\t%s\n", stats.Format)
			fmt.Fprintf(tw, "fingerprint:\t%s\n", stats.Fingerprint.Short())
			if stats.Origin != stats.Fingerprint {
				fmt.Fprintf(tw, "compiled from:\t%s\n", stats.Origin.Short())
			}
			fmt.Fprintf(tw, "source entries:\t%d\n", stats.SourceEntries)
			fmt.Fprintf(tw, "loaded:\t%d\n", stats.Report.Loaded)
			fmt.Fprintf(tw, "skipped:\t%d\n", stats.Report.Skipped)
			fmt.Fprintf(tw, "empty:\t%d\n", stats.Report.Empty)
			fmt.Fprintf(tw, "duplicate keys:\t%d\n", stats.Report.DuplicateKeys)
			fmt.Fprintf(tw, "duplicate targets:\t%d\n", stats.Report.DuplicateTargets)
			fmt.Fprintf(tw, "separator targets:\t%d\n", stats.Report.SeparatorTargets)
			fmt.Fprintf(tw, "longest key:\t%d\n", stats.MaxKeyLength)
			fmt.Fprintf(tw, "longest target:\t%d\n", stats.MaxTargetLength)
			return tw.Flush()
		}),
	}
}

// lookupResult is one direction of a "dict lookup" hit.
type lookupResult struct {
	Direction string `json:"direction"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

func dictLookupCommand(env *environment) *cli.Command {
	var outputJSON bool
	return &cli.Command{
		Name:    "lookup",
		Summary: "Look up an exact key or target",
		Description: `Look up text as a dictionary key and as a dictionary target.

Exits 1 without an error message when neither matches.`,
		Usage: "bearcode dict lookup [flags] <text>",
		Flags: env.flags("lookup", func(flagSet *pflag.FlagSet) {
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
		}),
		Run: env.run(func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one text argument, got %d", len(args))
			}
			loaded, err := env.loadDictionary()
			if err != nil {
				return err
			}

			text := args[0]
			var results []lookupResult
			if target, found := loaded.store.LookupForward(text); found {
				results = append(results, lookupResult{Direction: "forward", Input: text, Output: target})
			}
			if key, found := loaded.store.LookupReverse(text); found {
				results = append(results, lookupResult{Direction: "reverse", Input: text, Output: key})
			}

			if outputJSON {
				if err := cli.WriteJSON(env.streams.Out, results); err != nil {
					return err
				}
			} else {
				for _, result := range results {
					fmt.Fprintf(env.streams.Out, "%s\t%s → %s\n", result.Direction, result.Input, result.Output)
				}
			}
			if len(results) == 0 {
				if !outputJSON {
					fmt.Fprintf(env.streams.Err, "no dictionary entry for %q\n", text)
				}
				return &cli.ExitError{Code: 1}
			}
			return nil
		}),
	}
}

func dictSearchCommand(env *environment) *cli.Command {
	var outputJSON bool
	var limit int
	return &cli.Command{
		Name:    "search",
		Summary: "Fuzzy-search keys and targets",
		Usage:   "bearcode dict search [flags] <query>",
		Examples: []cli.Example{
			{Description: "Find phrases containing 你 and 好 in order", Command: "bearcode dict search 你好"},
		},
		Flags: env.flags("search", func(flagSet *pflag.FlagSet) {
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			flagSet.IntVarP(&limit, "limit", "n", 20, "maximum results (0 for all)")
		}),
		Run: env.run(func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("search query required")
			}
			loaded, err := env.loadDictionary()
			if err != nil {
				return err
			}

			matches := search.Entries(loaded.store.Entries(), strings.Join(args, " "), limit)
			if outputJSON {
				return cli.WriteJSON(env.streams.Out, matches)
			}
			if len(matches) == 0 {
				fmt.Fprintln(env.streams.Err, "no matches")
				return nil
			}
			tw := tabwriter.NewWriter(env.streams.Out, 2, 0, 2, ' ', 0)
			for _, match := range matches {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", match.Score, match.Field, match.Entry.Key, match.Entry.Target)
			}
			return tw.Flush()
		}),
	}
}

func dictCompileCommand(env *environment) *cli.Command {
	var output, compressionName string
	return &cli.Command{
		Name:    "compile",
		Summary: "Compile the dictionary into a snapshot",
		Description: `Compile the dictionary into a binary snapshot.

The snapshot holds the entries that survived the build, in order, plus
the fingerprint of the source file. Snapshots load faster than JSON or
YAML and are accepted anywhere a dictionary path is.`,
		Usage: "bearcode dict compile --output <file> [flags]",
		Flags: env.flags("compile", func(flagSet *pflag.FlagSet) {
			flagSet.StringVarP(&output, "output", "o", "", "snapshot file to write (required)")
			flagSet.StringVar(&compressionName, "compression", "zstd", "body compression: zstd, lz4, or none")
		}),
		Run: env.run(func(ctx context.Context, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			compression, err := dictfile.ParseCompression(compressionName)
			if err != nil {
				return err
			}
			loaded, err := env.loadDictionary()
			if err != nil {
				return err
			}

			data, err := dictfile.EncodeSnapshot(loaded.store.Entries(), loaded.source.Origin, compression)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			snapshot, err := dictfile.DecodeSnapshot(data)
			if err != nil {
				return fmt.Errorf("verifying snapshot: %w", err)
			}
			env.logger.Info("snapshot written",
				"output", output,
				"entries", len(snapshot.Entries),
				"compression", snapshot.Compression.String(),
				"bytes", len(data),
			)
			fmt.Fprintf(env.streams.Out, "compiled %d entries to %s (%s, %d bytes)\n",
				len(snapshot.Entries), output, snapshot.Compression, len(data))
			return nil
		}),
	}
}
