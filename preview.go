package md2rtf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// htmlPreviewer abstracts combined-Markdown to HTML rendering.
type htmlPreviewer interface {
	Preview(ctx context.Context, docs []Document) (string, error)
}

// goldmarkPreviewer renders the combined Markdown to HTML using goldmark
// (pure Go) for inspection before committing to RTF.
type goldmarkPreviewer struct {
	md goldmark.Markdown
}

// newGoldmarkPreviewer creates a goldmarkPreviewer with GFM extensions and
// syntax highlighting.
func newGoldmarkPreviewer() *goldmarkPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes keep the HTML small
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkPreviewer{md: md}
}

// Preview joins the documents into one Markdown stream, each under a level-1
// heading carrying its name, and converts it to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *goldmarkPreviewer) Preview(ctx context.Context, docs []Document) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var combined strings.Builder
	for i, doc := range docs {
		if i > 0 {
			combined.WriteString("\n\n---\n\n")
		}
		if doc.Name != "" {
			combined.WriteString("# " + doc.Name + "\n\n")
		}
		combined.WriteString(doc.Content)
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(combined.String()), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLPreview, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, combinedTitle, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
