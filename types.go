package md2rtf

import (
	"fmt"
	"strings"
)

// Default font names for the two RTF font slots.
const (
	DefaultSerifFont = "Times New Roman"
	DefaultMonoFont  = "Courier New"
)

// Document is one input text unit.
// Documents are immutable values: pipeline stages return new Documents
// instead of mutating in place.
type Document struct {
	Name    string // display title, usually the extension-stripped file base name
	Content string // raw UTF-8 text, any line-ending convention
}

// Key returns the deduplication identity: the content trimmed of
// surrounding whitespace. Two documents with equal keys are duplicates;
// internal whitespace differences keep them distinct.
func (d Document) Key() string {
	return strings.TrimSpace(d.Content)
}

// Input contains conversion parameters.
type Input struct {
	Documents   []Document // documents to combine, in output order (required)
	Optimize    bool       // enable deduplication, normalization, and RTF optimization
	HTMLPreview bool       // also render the combined Markdown to HTML
}

// ConvertResult holds the assembled RTF document and optional extras.
type ConvertResult struct {
	RTF           []byte             // the combined RTF document
	HTML          []byte             // standalone HTML preview (when Input.HTMLPreview)
	Stats         *OptimizationStats // size accounting (when Input.Optimize)
	DocumentCount int                // documents in the combined output, after deduplication
}

// OptimizationStats reports before/after sizes of the optimization pass.
// Sizes are UTF-8 encoded byte lengths, matching what a saved file's disk
// size would be.
type OptimizationStats struct {
	OriginalSize     int
	OptimizedSize    int
	ReductionPercent float64 // rounded to 2 decimals; 0 for empty input
}

// String formats stats for user-facing output, sizes in KB.
func (s OptimizationStats) String() string {
	return fmt.Sprintf("%.1f KB -> %.1f KB, %.2f%% reduction",
		float64(s.OriginalSize)/1024, float64(s.OptimizedSize)/1024, s.ReductionPercent)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	workers   int
	serifFont string
	monoFont  string
}

// WithWorkers sets the number of parallel render workers.
// Panics if n < 0 (programmer error); 0 means auto-size from GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("md2rtf: WithWorkers count must be >= 0")
	}
	return func(c *Converter) {
		c.cfg.workers = n
	}
}

// WithFonts sets the serif body font (slot 0) and monospace code font
// (slot 1) declared in the RTF font table. Empty values keep the defaults.
func WithFonts(serif, mono string) Option {
	return func(c *Converter) {
		if serif != "" {
			c.cfg.serifFont = serif
		}
		if mono != "" {
			c.cfg.monoFont = mono
		}
	}
}
