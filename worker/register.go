package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/jsdbg/analyzer"
	"github.com/viant/jsdbg/analyzer/scope"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/sourcetree"
)

// Method names served by Register
const (
	MethodGetSymbols             = "getSymbols"
	MethodGetClosestExpression   = "getClosestExpression"
	MethodGetClosestScope        = "getClosestScope"
	MethodGetOutOfScopeLocations = "getOutOfScopeLocations"
	MethodGetNextStep            = "getNextStep"
	MethodResolveToken           = "resolveToken"
	MethodCreateTree             = "createTree"
	MethodUpdateTree             = "updateTree"
	MethodGetDirectories         = "getDirectories"
)

var errMissingSource = fmt.Errorf("%w: missing source", ErrProtocol)

// SourceArgs identifies the source a query runs against
type SourceArgs struct {
	Source *graph.Source `json:"source"`
}

// PositionArgs is a source with a cursor position
type PositionArgs struct {
	Source   *graph.Source  `json:"source"`
	Position graph.Position `json:"position"`
}

// ExpressionArgs is a hovered token
type ExpressionArgs struct {
	Source   *graph.Source   `json:"source"`
	Token    string          `json:"token"`
	Position graph.Position  `json:"position"`
	Paused   *graph.Position `json:"paused,omitempty"` // resolveToken only
}

// StepArgs is a step request at the paused position
type StepArgs struct {
	Source   *graph.Source  `json:"source"`
	StepType string         `json:"stepType"`
	Paused   graph.Position `json:"paused"`
}

// TreeArgs carries the debuggee sources and optional tree settings
type TreeArgs struct {
	Sources     []*graph.Source `json:"sources"`
	DebuggeeURL *string         `json:"debuggeeURL,omitempty"`
	ProjectRoot *string         `json:"projectRoot,omitempty"`
}

// DirectoriesArgs names the source whose directories are requested
type DirectoriesArgs struct {
	URL string `json:"url"`
}

// TreeResult is the source tree after a create or update
type TreeResult struct {
	SourceTree  *sourcetree.Node `json:"sourceTree"`
	Uncollapsed *sourcetree.Node `json:"uncollapsedTree"`
	Violations  []string         `json:"violations,omitempty"`
}

// NodeRef identifies a tree node without its subtree
type NodeRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Register binds the analysis and source tree methods to d
func Register(d *Dispatcher, a *analyzer.Analyzer, tree *sourcetree.Tree) {
	d.Handle(MethodGetSymbols, Bind(func(ctx context.Context, args *SourceArgs) (*graph.Symbols, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.Symbols(ctx, args.Source)
	}))
	d.Handle(MethodGetClosestExpression, Bind(func(ctx context.Context, args *ExpressionArgs) (*analyzer.Expression, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.ClosestExpression(ctx, args.Source, args.Token, args.Position)
	}))
	d.Handle(MethodGetClosestScope, Bind(func(ctx context.Context, args *PositionArgs) (*scope.Scope, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.ClosestScope(ctx, args.Source, args.Position)
	}))
	d.Handle(MethodGetOutOfScopeLocations, Bind(func(ctx context.Context, args *PositionArgs) ([]graph.Span, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.OutOfScopeLocations(ctx, args.Source, args.Position)
	}))
	d.Handle(MethodGetNextStep, Bind(func(ctx context.Context, args *StepArgs) (*analyzer.Step, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.NextStep(ctx, args.Source, args.StepType, args.Paused)
	}))
	d.Handle(MethodResolveToken, Bind(func(ctx context.Context, args *ExpressionArgs) (*analyzer.TokenResolution, error) {
		if args.Source == nil {
			return nil, errMissingSource
		}
		return a.ResolveToken(ctx, args.Source, args.Token, args.Position, args.Paused)
	}))

	trees := &treeService{tree: tree}
	d.Handle(MethodCreateTree, Bind(trees.create))
	d.Handle(MethodUpdateTree, Bind(trees.update))
	d.Handle(MethodGetDirectories, Bind(trees.directories))
}

// treeService serializes access to the single-writer source tree
type treeService struct {
	mu   sync.Mutex
	tree *sourcetree.Tree
}

func (s *treeService) create(_ context.Context, args *TreeArgs) (*TreeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result(s.tree.CreateWithConfig(s.config(args), args.Sources))
}

func (s *treeService) update(_ context.Context, args *TreeArgs) (*TreeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result(s.tree.UpdateWithConfig(s.config(args), args.Sources))
}

func (s *treeService) directories(_ context.Context, args *DirectoriesArgs) ([]NodeRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []NodeRef
	for _, node := range s.tree.GetDirectories(args.URL) {
		result = append(result, NodeRef{Name: node.Name, Path: node.Path})
	}
	return result, nil
}

// config returns the tree settings with the overrides of args applied
func (s *treeService) config(args *TreeArgs) sourcetree.Config {
	config := s.tree.Config()
	if args.DebuggeeURL != nil {
		config.DebuggeeURL = *args.DebuggeeURL
	}
	if args.ProjectRoot != nil {
		config.ProjectRoot = *args.ProjectRoot
	}
	return config
}

// result reports invariant violations next to the tree instead of failing the call
func (s *treeService) result(err error) (*TreeResult, error) {
	result := &TreeResult{SourceTree: s.tree.Root(), Uncollapsed: s.tree.Uncollapsed()}
	if err == nil {
		return result, nil
	}
	var violation *sourcetree.TreeInvariantViolation
	if !errors.As(err, &violation) {
		return nil, err
	}
	result.Violations = violationMessages(err)
	return result, nil
}

func violationMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var result []string
		for _, e := range joined.Unwrap() {
			result = append(result, violationMessages(e)...)
		}
		return result
	}
	return []string{err.Error()}
}
