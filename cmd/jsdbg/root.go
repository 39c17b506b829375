package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/jsdbg/analyzer"
	"github.com/viant/jsdbg/config"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/inspector/repository"
	"github.com/viant/jsdbg/sourcetree"
	"github.com/viant/jsdbg/worker"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// maxConcurrentLoads bounds parallel source downloads
const maxConcurrentLoads = 8

// app holds state shared by all subcommands
type app struct {
	configURL string
	logLevel  string

	fs     afs.Service
	config *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{fs: afs.New()}
	cmd := &cobra.Command{
		Use:   "jsdbg",
		Short: "JavaScript debugger static analysis",
		Long: `jsdbg runs the static analyses of a JavaScript debugger front end against
local or remote sources: source tree building, symbol extraction, scope
resolution, out-of-scope ranges and await stepping.

Sources may be local paths or any URL supported by afs (file://, mem://, gs://, s3://).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configURL, "config", "c", "", "YAML config URL")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newTreeCmd(a),
		newSymbolsCmd(a),
		newScopeCmd(a),
		newOutOfScopeCmd(a),
		newStepCmd(a),
		newExprCmd(a),
		newProjectCmd(a),
	)
	return cmd
}

func (a *app) init(ctx context.Context, stderr io.Writer) error {
	cfg := config.Default()
	if a.configURL != "" {
		loaded, err := config.Load(ctx, a.fs, a.configURL)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}
	a.config, a.logger = cfg, logger
	slog.SetDefault(logger)
	return nil
}

// dispatcher starts a dispatcher serving the analysis methods
func (a *app) dispatcher(tree *sourcetree.Tree) (*worker.Dispatcher, error) {
	analysis, err := a.analyzer()
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = sourcetree.NewTree(&a.config.Tree, a.logger)
	}
	d := worker.NewDispatcher(a.config.Worker.Workers, a.config.Worker.QueueSize, a.logger)
	worker.Register(d, analysis, tree)
	return d, nil
}

func (a *app) analyzer() (*analyzer.Analyzer, error) {
	return analyzer.New(
		analyzer.WithMaxEntries(a.config.Cache.MaxEntries),
		analyzer.WithParserConfig(&a.config.Parser),
		analyzer.WithLogger(a.logger),
	)
}

// call runs one dispatcher method and prints its result
func (a *app) call(ctx context.Context, w io.Writer, method string, args interface{}, result interface{}) error {
	d, err := a.dispatcher(nil)
	if err != nil {
		return err
	}
	defer d.Close()
	if err = d.Call(ctx, method, args, result); err != nil {
		return err
	}
	return render(w, result)
}

// load fetches the sources of every location concurrently, keeping argument order
func (a *app) load(ctx context.Context, locations []string) ([]*graph.Source, error) {
	loaded := make([][]*graph.Source, len(locations))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentLoads)
	for i, location := range locations {
		group.Go(func() error {
			sources, err := repository.Load(ctx, a.fs, location)
			if err != nil {
				return err
			}
			loaded[i] = sources
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var result []*graph.Source
	for _, sources := range loaded {
		result = append(result, sources...)
	}
	a.logger.Debug("loaded sources", slog.Int("locations", len(locations)), slog.Int("sources", len(result)))
	return result, nil
}

// source loads exactly one source
func (a *app) source(ctx context.Context, location string) (*graph.Source, error) {
	sources, err := a.load(ctx, []string{location})
	if err != nil {
		return nil, err
	}
	if len(sources) != 1 {
		return nil, fmt.Errorf("expected a single source at %v, found %d", location, len(sources))
	}
	return sources[0], nil
}

func render(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return encoder.Close()
}
