// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bearcode/cmd/bearcode/cli"
	"github.com/bureau-foundation/bearcode/lib/clock"
	"github.com/bureau-foundation/bearcode/lib/config"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
	"github.com/bureau-foundation/bearcode/lib/reload"
	"github.com/bureau-foundation/bearcode/lib/translate"
)

// environment is the state shared by every command in one process.
type environment struct {
	streams cli.Streams
	level   *slog.LevelVar
	logger  *slog.Logger
	clock   clock.Clock

	configPath     string
	dictionaryPath string
	verbose        bool
}

func newEnvironment(streams cli.Streams) *environment {
	level := new(slog.LevelVar)
	return &environment{
		streams: streams,
		level:   level,
		logger:  cli.NewCommandLogger(streams.Err, level),
		clock:   clock.Real(),
	}
}

// flags returns a Flags function for a command named name. The global
// flags are added to every command's set; bind adds the command's own.
func (env *environment) flags(name string, bind func(*pflag.FlagSet)) func() *pflag.FlagSet {
	return func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
		if bind != nil {
			bind(flagSet)
		}
		flagSet.StringVar(&env.configPath, "config", "", "configuration file (default $"+config.EnvironmentVariable+")")
		flagSet.StringVar(&env.dictionaryPath, "dictionary", "", "dictionary file, overriding the configured path")
		flagSet.BoolVarP(&env.verbose, "verbose", "v", false, "debug logging")
		return flagSet
	}
}

// run adapts a command body to cli.Command.Run, applying --verbose
// before the body starts.
func (env *environment) run(body func(ctx context.Context, args []string) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		if env.verbose {
			env.level.Set(slog.LevelDebug)
		}
		return body(ctx, args)
	}
}

// loadConfig loads --config, else $BEARCODE_CONFIG, else the defaults,
// then applies --dictionary and validates.
func (env *environment) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if env.configPath != "" {
		cfg, err = config.LoadFile(env.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if env.dictionaryPath != "" {
		cfg.Dictionary.Path = env.dictionaryPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// session is a configured engine with its dictionary loaded.
type session struct {
	config  *config.Config
	holder  *dictionary.Holder
	engine  *translate.Engine
	watcher *reload.Watcher
}

// sessionOptions adjusts how a session reports dictionary loads.
type sessionOptions struct {
	// Logger receives the reload watcher's records. Nil uses the
	// environment's logger.
	Logger *slog.Logger

	// OnChange is called by the watcher after each reload triggered
	// by Run.
	OnChange func(reload.Event)
}

// openSession builds the engine and performs the first dictionary
// load. An unavailable dictionary leaves the engine codec-only with a
// warning, unless the configuration marks the dictionary required.
func (env *environment) openSession(options sessionOptions) (*session, error) {
	cfg, err := env.loadConfig()
	if err != nil {
		return nil, err
	}

	engineOptions, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	holder := dictionary.NewHolder(dictionary.Empty())
	engine, err := translate.New(holder, engineOptions)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	current := &session{config: cfg, holder: holder, engine: engine}
	if cfg.Dictionary.Path == "" {
		env.logger.Debug("no dictionary configured, converting with the codec only")
		return current, nil
	}

	interval, err := cfg.ReloadInterval()
	if err != nil {
		return nil, err
	}
	logger := options.Logger
	if logger == nil {
		logger = env.logger
	}
	current.watcher, err = reload.New(reload.Config{
		Path:     cfg.Dictionary.Path,
		Options:  cfg.DictionaryOptions(),
		Holder:   holder,
		Clock:    env.clock,
		Interval: interval,
		Logger:   logger,
		OnChange: options.OnChange,
	})
	if err != nil {
		return nil, err
	}

	event, _ := current.watcher.Load()
	if event.Err != nil && cfg.Dictionary.Required {
		return nil, fmt.Errorf("dictionary is required: %w", event.Err)
	}
	return current, nil
}
