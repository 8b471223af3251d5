package md2rtf

import (
	"context"
	"fmt"
	"sync"
)

// Compile-time interface implementation checks.
var _ htmlPreviewer = (*goldmarkPreviewer)(nil)

// Converter orchestrates the markdown-to-RTF combination pipeline.
// A Converter is stateless apart from configuration and is safe for
// concurrent use.
type Converter struct {
	cfg       converterConfig
	previewer htmlPreviewer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithWorkers, WithFonts).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			serifFont: DefaultSerifFont,
			monoFont:  DefaultMonoFont,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create previewer if not injected (e.g., by tests)
	if c.previewer == nil {
		c.previewer = newGoldmarkPreviewer()
	}

	return c
}

// Convert runs the full pipeline and returns the combined RTF document.
// When input.Optimize is set, duplicate documents are dropped, Markdown is
// normalized before rendering, and the assembled RTF goes through the
// optimization pass with size stats attached to the result. The context is
// used for cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if len(input.Documents) == 0 {
		return nil, ErrNoDocuments
	}

	docs := input.Documents
	if input.Optimize {
		docs = Dedupe(docs)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragments, err := c.renderAll(ctx, docs, input.Optimize)
	if err != nil {
		return nil, err
	}

	rtf := assembleRTF(fragments, c.cfg.serifFont, c.cfg.monoFont)

	res := &ConvertResult{DocumentCount: len(docs)}

	// The optimizer runs exactly once, over the fully assembled document:
	// its paragraph-run rules are not composable across fragment boundaries.
	if input.Optimize {
		optimized, stats := Optimize(rtf)
		rtf = optimized
		res.Stats = &stats
	}
	res.RTF = []byte(rtf)

	if input.HTMLPreview {
		htmlDoc, err := c.previewer.Preview(ctx, docs)
		if err != nil {
			return nil, fmt.Errorf("rendering HTML preview: %w", err)
		}
		res.HTML = []byte(htmlDoc)
	}

	return res, nil
}

// renderAll normalizes and renders every document, in parallel when the
// resolved worker count allows, and reassembles fragments in input order.
func (c *Converter) renderAll(ctx context.Context, docs []Document, normalize bool) ([]string, error) {
	fragments := make([]string, len(docs))

	workers := ResolvePoolSize(c.cfg.workers)
	if workers > len(docs) {
		workers = len(docs)
	}

	if workers <= 1 {
		for i, doc := range docs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fragments[i] = renderDocument(doc, normalize)
		}
		return fragments, nil
	}

	jobs := make(chan int, len(docs))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				fragments[idx] = renderDocument(docs[idx], normalize)
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fragments, nil
}

// renderDocument runs the per-document stages: optional normalization,
// then rendering with the document name as the fragment title.
func renderDocument(doc Document, normalize bool) string {
	content := doc.Content
	if normalize {
		content = Normalize(content)
	}
	return Render(content, doc.Name)
}
