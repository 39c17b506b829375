package analyzer

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsdbg/inspector"
	"github.com/viant/jsdbg/inspector/graph"
)

func TestCache_Ast(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	ctx := context.Background()

	source := &graph.Source{ID: "a.js", Text: "var a = 1;"}
	first, err := cache.Ast(ctx, source)
	require.NoError(t, err)
	second, err := cache.Ast(ctx, &graph.Source{ID: "a.js", Text: "var a = 1;"})
	require.NoError(t, err)
	assert.Same(t, first, second, "unchanged text is served from the cache")

	changed, err := cache.Ast(ctx, &graph.Source{ID: "a.js", Text: "var b = 2;"})
	require.NoError(t, err)
	assert.NotSame(t, first, changed, "changed text is parsed again")
	assert.Equal(t, 1, cache.Len())

	assert.True(t, cache.Invalidate("a.js"))
	assert.False(t, cache.Invalidate("a.js"))
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Ast(ctx, nil)
	assert.Error(t, err)
}

func TestCache_Ast_SyntaxError(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	before := testutil.ToFloat64(parseFailuresTotal.WithLabelValues("html"))

	tree, err := cache.Ast(context.Background(), &graph.Source{ID: "page.html", ContentType: graph.ContentTypeHTML, Text: "<script>var = ;</script>"})
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, before+1, testutil.ToFloat64(parseFailuresTotal.WithLabelValues("html")))

	tree, err = cache.Ast(context.Background(), &graph.Source{ID: "ok.js", Text: "var a = 1;"})
	require.NoError(t, err)
	assert.False(t, tree.IsEmpty())
}

func TestCache_Ast_PartialHTML(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	before := testutil.ToFloat64(parseFailuresTotal.WithLabelValues("html"))

	source := &graph.Source{ID: "page.html", ContentType: graph.ContentTypeHTML,
		Text: "<script>function good(){}</script>\n<script>var = ;</script>"}
	tree, err := cache.Ast(context.Background(), source)
	require.NoError(t, err)
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, before+1, testutil.ToFloat64(parseFailuresTotal.WithLabelValues("html")))

	analyzer, err := New(WithCache(cache))
	require.NoError(t, err)
	symbols, err := analyzer.Symbols(context.Background(), source)
	require.NoError(t, err)
	require.NotNil(t, symbols.LookupFunction("good"))
}

func TestCache_Ast_SharedParseOutlivesCaller(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	source := &graph.Source{ID: "big.js", Text: strings.Repeat("var a = 1;\n", 200000)}

	short, cancel := context.WithTimeout(context.Background(), 2*time.Millisecond)
	defer cancel()
	var shortErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, shortErr = cache.Ast(short, source)
	}()
	time.Sleep(time.Millisecond)

	tree, err := cache.Ast(context.Background(), source)
	require.NoError(t, err)
	assert.False(t, tree.IsEmpty())
	wg.Wait()
	if shortErr != nil {
		assert.ErrorIs(t, shortErr, context.DeadlineExceeded)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Ast_SizeLimit(t *testing.T) {
	cache, err := NewCache(0, inspector.NewFactory(&graph.Config{MaxFileSize: 4}), nil)
	require.NoError(t, err)
	tree, err := cache.Ast(context.Background(), &graph.Source{ID: "big.js", Text: "var a = 1;"})
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestCache_Ast_Canceled(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cache.Ast(ctx, &graph.Source{ID: "a.js", Text: "var a = 1;"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Bounded(t *testing.T) {
	cache, err := NewCache(2, nil, nil)
	require.NoError(t, err)
	for _, id := range []string{"a.js", "b.js", "c.js"} {
		_, err := cache.Ast(context.Background(), &graph.Source{ID: id, Text: "var " + id[:1] + ";"})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Invalidate("a.js"), "least recently used entry was evicted")
	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Concurrent(t *testing.T) {
	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	source := &graph.Source{ID: "shared.js", Text: "function f(a) { return a; }"}

	trees := make([]interface{}, 8)
	var wg sync.WaitGroup
	for i := range trees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tree, err := cache.Ast(context.Background(), source)
			assert.NoError(t, err)
			trees[i] = tree
		}(i)
	}
	wg.Wait()
	for _, tree := range trees[1:] {
		assert.Same(t, trees[0], tree)
	}
}
