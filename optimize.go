package md2rtf

import (
	"math"
	"regexp"
)

// rewriteRule is one textual rewrite in the optimization pass: a global
// substitution applied over the whole document.
type rewriteRule struct {
	name    string
	pattern *regexp.Regexp
	repl    string
}

// optimizeRules is the fixed, ordered rewrite list. Order matters: later
// rules assume earlier normalization has already run (for example, the
// paragraph-run collapse is re-applied after whitespace collapse exposes
// adjacent tokens). Every rule targets a provably redundant construct;
// none may alter rendered text or the final resolved formatting state.
var optimizeRules = []rewriteRule{
	// 1. Collapse runs of 3+ paragraph breaks to 2.
	{"collapse-par-runs", regexp.MustCompile(`(?:\\par){3,}`), `\par\par`},
	// 2. Collapse any whitespace run (including newlines) to a single space.
	{"collapse-whitespace", regexp.MustCompile(`\s+`), ` `},
	// 3. Remove whitespace immediately following a paragraph break.
	{"strip-after-par", regexp.MustCompile(`\\par\s+`), `\par`},
	// 4. Canonicalize the longer paragraph-break spellings to \par.
	{"par-spelling-pard-par", regexp.MustCompile(`\\pard\\par\b`), `\par`},
	{"par-spelling-par-pard", regexp.MustCompile(`\\par\\pard\b`), `\par`},
	// 5. Collapse repeated formatting resets to a single reset.
	{"collapse-resets", regexp.MustCompile(`(?:\\pard){2,}\b`), `\pard`},
	// 6. Collapse bold-off-then-bold-on to a single bold-on.
	{"collapse-bold-toggle", regexp.MustCompile(`\\b0 ?\\b\b`), `\b`},
	// 7. Collapse doubled font selections for each of the two slots.
	{"collapse-serif-font", regexp.MustCompile(`\\f0 ?\\f0\b`), `\f0`},
	{"collapse-mono-font", regexp.MustCompile(`\\f1 ?\\f1\b`), `\f1`},
	// 8. Second paragraph-run pass: catches sequences exposed by rule 2.
	{"collapse-par-runs-again", regexp.MustCompile(`(?:\\par){3,}`), `\par\par`},
	// 9. Remove whitespace immediately preceding a control-word backslash.
	{"strip-before-control", regexp.MustCompile(`\s+\\`), `\`},
	// 10. Canonicalize whitespace after a bullet to exactly one space.
	{"bullet-spacing", regexp.MustCompile(`\\bullet\s+`), `\bullet `},
	// 11. Remove empty brace groups.
	{"drop-empty-groups", regexp.MustCompile(`\{\}`), ``},
	// 12. Drop groups whose content is only a control word with no text.
	{"drop-control-only-groups", regexp.MustCompile(`\{\\[a-z]+-?[0-9]* ?\}`), ``},
	// 13. Doubled adjacent font sizes: keep the second (last-wins, matching
	// RTF's own override semantics).
	{"font-size-override", regexp.MustCompile(`\\fs[0-9]+ ?(\\fs[0-9]+)\b`), `$1`},
	// 14. Trim whitespace just inside group braces.
	{"trim-after-open-brace", regexp.MustCompile(`\{ +`), `{`},
	{"trim-before-close-brace", regexp.MustCompile(` +\}`), `}`},
}

// Optimize shrinks an RTF document by applying the ordered rewrite list and
// reports before/after byte sizes. The rewrites remove only redundant
// control sequences, whitespace, and empty groups; the rendered content is
// unchanged.
func Optimize(rtf string) (string, OptimizationStats) {
	optimized := rtf
	for _, rule := range optimizeRules {
		optimized = rule.pattern.ReplaceAllString(optimized, rule.repl)
	}

	return optimized, newOptimizationStats(len(rtf), len(optimized))
}

// newOptimizationStats computes size accounting from byte lengths.
// The reduction percentage of an empty input is defined as 0.
func newOptimizationStats(original, optimized int) OptimizationStats {
	stats := OptimizationStats{
		OriginalSize:  original,
		OptimizedSize: optimized,
	}
	if original > 0 {
		percent := float64(original-optimized) / float64(original) * 100
		stats.ReductionPercent = math.Round(percent*100) / 100
	}
	return stats
}
