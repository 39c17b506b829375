package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/viant/jsdbg/analyzer"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/inspector/repository"
	"github.com/viant/jsdbg/sourcetree"
	"github.com/viant/jsdbg/worker"
)

// position holds --line and --column
type position struct {
	line   int
	column int
}

func (p *position) bind(cmd *cobra.Command, prefix, usage string) {
	cmd.Flags().IntVar(&p.line, prefix+"line", 1, usage+" line, 1-based")
	cmd.Flags().IntVar(&p.column, prefix+"column", 0, usage+" column, 0-based")
}

func (p *position) value() graph.Position {
	return graph.Position{Line: p.line, Column: p.column}
}

func newTreeCmd(a *app) *cobra.Command {
	var debuggeeURL, projectRoot string
	var detect bool
	cmd := &cobra.Command{
		Use:   "tree <location...>",
		Short: "Print the collapsed source tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sources, err := a.load(ctx, args)
			if err != nil {
				return err
			}
			treeConfig := a.config.Tree
			if debuggeeURL != "" {
				treeConfig.DebuggeeURL = debuggeeURL
			}
			if projectRoot != "" {
				treeConfig.ProjectRoot = projectRoot
			}
			if detect {
				project, err := repository.New(a.fs).DetectProject(ctx, args[0])
				if err != nil {
					return err
				}
				treeConfig.ProjectRoot = project.TreePath()
			}
			d, err := a.dispatcher(sourcetree.NewTree(&treeConfig, a.logger))
			if err != nil {
				return err
			}
			defer d.Close()
			result := &worker.TreeResult{}
			if err = d.Call(ctx, worker.MethodCreateTree, &worker.TreeArgs{Sources: sources}, result); err != nil {
				return err
			}
			for _, violation := range result.Violations {
				a.logger.Warn("source left out of the tree", "reason", violation)
			}
			return render(cmd.OutOrStdout(), result.SourceTree)
		},
	}
	cmd.Flags().StringVar(&debuggeeURL, "debuggee", "", "debuggee URL whose host is listed first")
	cmd.Flags().StringVar(&projectRoot, "project-root", "", "tree path shown as the root")
	cmd.Flags().BoolVar(&detect, "project", false, "use the project detected around the first location as the root")
	return cmd
}

func newSymbolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <location>",
		Short: "Print function, variable and member expression declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.call(cmd.Context(), cmd.OutOrStdout(), worker.MethodGetSymbols, &worker.SourceArgs{Source: source}, &graph.Symbols{})
		},
	}
}

func newScopeCmd(a *app) *cobra.Command {
	var at position
	cmd := &cobra.Command{
		Use:   "scope <location>",
		Short: "Print the scope chain at a position, innermost first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			analysis, err := a.analyzer()
			if err != nil {
				return err
			}
			chain, err := analysis.ScopeChain(cmd.Context(), source, at.value())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), chain)
		},
	}
	at.bind(cmd, "", "cursor")
	return cmd
}

func newOutOfScopeCmd(a *app) *cobra.Command {
	var at position
	cmd := &cobra.Command{
		Use:   "outofscope <location>",
		Short: "Print the function ranges hidden from a paused position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var spans []graph.Span
			return a.call(cmd.Context(), cmd.OutOrStdout(), worker.MethodGetOutOfScopeLocations, &worker.PositionArgs{Source: source, Position: at.value()}, &spans)
		},
	}
	at.bind(cmd, "", "paused")
	return cmd
}

func newStepCmd(a *app) *cobra.Command {
	var at position
	var stepType string
	cmd := &cobra.Command{
		Use:   "step <location>",
		Short: "Print the step to issue when paused at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch stepType {
			case analyzer.StepOver, analyzer.StepIn, analyzer.StepOut:
			default:
				return errors.New("--type must be stepOver, stepIn or stepOut")
			}
			source, err := a.source(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.call(cmd.Context(), cmd.OutOrStdout(), worker.MethodGetNextStep, &worker.StepArgs{Source: source, StepType: stepType, Paused: at.value()}, &analyzer.Step{})
		},
	}
	at.bind(cmd, "", "paused")
	cmd.Flags().StringVar(&stepType, "type", analyzer.StepOver, "requested step: stepOver, stepIn or stepOut")
	return cmd
}

func newExprCmd(a *app) *cobra.Command {
	var at, paused position
	var token string
	cmd := &cobra.Command{
		Use:   "expr <location>",
		Short: "Resolve the expression of a hovered token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.source(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			request := &worker.ExpressionArgs{Source: source, Token: token, Position: at.value()}
			if cmd.Flags().Changed("paused-line") {
				value := paused.value()
				request.Paused = &value
			}
			return a.call(cmd.Context(), cmd.OutOrStdout(), worker.MethodResolveToken, request, &analyzer.TokenResolution{})
		},
	}
	at.bind(cmd, "", "token")
	paused.bind(cmd, "paused-", "paused")
	cmd.Flags().StringVar(&token, "token", "", "hovered token text")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project <location>",
		Short: "Print the project detected around a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := repository.New(a.fs).DetectProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), project)
		},
	}
}
