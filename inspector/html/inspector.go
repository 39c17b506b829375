package html

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/inspector/javascript"
)

// Inspector parses the inline scripts of an HTML document into one ast.Tree
type Inspector struct {
	js *javascript.Inspector
}

// NewInspector creates a new HTML Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	return &Inspector{js: javascript.NewInspector(config)}
}

// InspectSource parses every script block of src. Node positions are in the
// coordinate space of the whole document.
// Blocks are parsed independently: a block that fails is left out and its error
// is returned together with the tree of the remaining blocks.
func (i *Inspector) InspectSource(ctx context.Context, src []byte) (*ast.Tree, error) {
	document := string(src)
	tree := ast.NewTree(graph.SpanOf(document))
	var errs []error
	for _, fragment := range Scripts(document) {
		if err := i.js.InspectFragment(ctx, tree, []byte(fragment.Text), fragment.Start); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errs = append(errs, fmt.Errorf("script at %v: %w", fragment.Start, err))
		}
	}
	return tree, errors.Join(errs...)
}
