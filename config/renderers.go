package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/domonda/go-jsontable"
)

// RendererFactory returns a renderer for the optional
// argument that follows the renderer name after a colon.
type RendererFactory func(arg string) (jsontable.CellRenderer, error)

var (
	renderersMtx sync.RWMutex
	renderers    = map[string]RendererFactory{
		"text": func(arg string) (jsontable.CellRenderer, error) {
			if arg != "" {
				return nil, fmt.Errorf("renderer text has no argument, got %q", arg)
			}
			return jsontable.TextCellRenderer{}, nil
		},
		"handle-link": func(arg string) (jsontable.CellRenderer, error) {
			return jsontable.HandleLinkRenderer{ProfileURLPrefix: arg}, nil
		},
		"external-link": func(arg string) (jsontable.CellRenderer, error) {
			return jsontable.ExternalLinkRenderer{Glyph: arg}, nil
		},
		"printf": func(arg string) (jsontable.CellRenderer, error) {
			if !strings.Contains(arg, "%") {
				return nil, fmt.Errorf("renderer printf needs a format with a verb, got %q", arg)
			}
			return jsontable.PrintfCellRenderer(arg), nil
		},
	}
)

// RegisterRenderer registers a renderer factory under name
// so configs can reference it. An existing factory is replaced.
func RegisterRenderer(name string, factory RendererFactory) {
	renderersMtx.Lock()
	defer renderersMtx.Unlock()

	renderers[name] = factory
}

// RendererNames returns the sorted names of all registered renderers.
func RendererNames() []string {
	renderersMtx.RLock()
	defer renderersMtx.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRenderer returns the renderer for a config value
// like "handle-link" or "printf:%s USD".
// An empty spec returns nil, meaning no renderer.
func NewRenderer(spec string) (jsontable.CellRenderer, error) {
	if spec == "" {
		return nil, nil
	}
	name, arg, _ := strings.Cut(spec, ":")

	renderersMtx.RLock()
	factory, ok := renderers[name]
	renderersMtx.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return factory(arg)
}
