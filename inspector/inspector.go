package inspector

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/jsdbg/inspector/ast"
	"github.com/viant/jsdbg/inspector/graph"
	"github.com/viant/jsdbg/inspector/html"
	"github.com/viant/jsdbg/inspector/javascript"
)

// ErrSourceTooLarge is returned for sources above the configured size limit
var ErrSourceTooLarge = errors.New("source too large")

// Inspector provides an interface for parsing source text
type Inspector interface {
	// InspectSource parses source code from a byte slice into an ast.Tree.
	// A non-nil tree returned with an error holds the parts that did parse.
	InspectSource(ctx context.Context, src []byte) (*ast.Tree, error)
}

// Factory creates appropriate inspectors based on content type
type Factory struct {
	config *graph.Config
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Factory{
		config: config,
	}
}

// GetInspector returns an appropriate inspector for a content type
func (f *Factory) GetInspector(contentType graph.ContentType) (Inspector, error) {
	switch contentType {
	case graph.ContentTypeJavaScript, "":
		return javascript.NewInspector(f.config), nil
	case graph.ContentTypeHTML:
		return html.NewInspector(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// InspectSource is a convenience method that gets the appropriate inspector and parses the source
func (f *Factory) InspectSource(ctx context.Context, source *graph.Source) (*ast.Tree, error) {
	if f.config.MaxFileSize > 0 && len(source.Text) > f.config.MaxFileSize {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrSourceTooLarge, source.ID, len(source.Text))
	}
	inspector, err := f.GetInspector(source.ContentType)
	if err != nil {
		return nil, err
	}
	return inspector.InspectSource(ctx, []byte(source.Text))
}
