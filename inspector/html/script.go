package html

import (
	"strings"

	"github.com/viant/jsdbg/inspector/graph"
	"golang.org/x/net/html"
)

// Fragment is the body of one inline script element
type Fragment struct {
	Text  string
	Start graph.Position // position of the first byte of Text in the document
}

var scriptTypes = map[string]bool{
	"":                       true,
	"text/javascript":        true,
	"application/javascript": true,
	"application/ecmascript": true,
	"text/ecmascript":        true,
	"module":                 true,
	"text/jsx":               true,
	"text/babel":             true,
}

// Scripts extracts inline JavaScript blocks from an HTML document
func Scripts(document string) []*Fragment {
	var fragments []*Fragment
	tokenizer := html.NewTokenizer(strings.NewReader(document))
	offset := 0
	inScript := false
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return fragments
		}
		raw := tokenizer.Raw()
		switch tokenType {
		case html.StartTagToken:
			name, hasAttr := tokenizer.TagName()
			inScript = string(name) == "script" && isJavaScript(tokenizer, hasAttr)
		case html.TextToken:
			if inScript && strings.TrimSpace(string(raw)) != "" {
				fragments = append(fragments, &Fragment{
					Text:  string(raw),
					Start: graph.PositionAt(document, offset),
				})
			}
		case html.EndTagToken:
			inScript = false
		}
		offset += len(raw)
	}
}

func isJavaScript(tokenizer *html.Tokenizer, hasAttr bool) bool {
	for hasAttr {
		var key, value []byte
		key, value, hasAttr = tokenizer.TagAttr()
		if string(key) == "type" {
			return scriptTypes[strings.ToLower(strings.TrimSpace(string(value)))]
		}
	}
	return true
}
