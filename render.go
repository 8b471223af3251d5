package md2rtf

import (
	"regexp"
	"strings"
)

// Inline span and list item patterns.
var (
	boldSpan    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicSpan  = regexp.MustCompile(`\*(.*?)\*`)
	orderedItem = regexp.MustCompile(`^[0-9]+\.\s`)
)

// lineKind identifies how a Markdown line is rendered.
type lineKind int

// Line kinds in classification priority order: the first matching test
// wins, so a line containing ** is never re-tested for the later kinds.
const (
	lineHeading1 lineKind = iota
	lineHeading2
	lineHeading3
	lineBoldSpan
	lineItalicSpan
	lineCodeFence
	lineBulletItem
	lineOrderedItem
	lineBlank
	linePlain
)

// classifyLine maps a trimmed line to its kind. Tests run in fixed
// priority order; a line containing both ** and a lone * is classified as
// a bold-span line, leaving the italic markers literal (documented
// limitation, not corrected here).
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "# "):
		return lineHeading1
	case strings.HasPrefix(line, "## "):
		return lineHeading2
	case strings.HasPrefix(line, "### "):
		return lineHeading3
	case strings.Contains(line, "**"):
		return lineBoldSpan
	case strings.Contains(line, "*"):
		return lineItalicSpan
	case strings.HasPrefix(line, codeFenceToken):
		return lineCodeFence
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return lineBulletItem
	case orderedItem.MatchString(line):
		return lineOrderedItem
	case line == "":
		return lineBlank
	default:
		return linePlain
	}
}

// renderLine converts one trimmed Markdown line to RTF. Text is always
// wrapped in a brace group so the optimizer's whitespace rules cannot
// splice a control word into rendered text.
func renderLine(line string) string {
	switch classifyLine(line) {
	case lineHeading1:
		return headingRun(heading1Size, line[len("# "):])
	case lineHeading2:
		return headingRun(heading2Size, line[len("## "):])
	case lineHeading3:
		return headingRun(heading3Size, line[len("### "):])
	case lineBoldSpan:
		text := boldSpan.ReplaceAllString(escapeText(line), `{\b $1}`)
		return `{` + text + `}` + parBreak
	case lineItalicSpan:
		text := italicSpan.ReplaceAllString(escapeText(line), `{\i $1}`)
		return `{` + text + `}` + parBreak
	case lineCodeFence:
		return `{` + monoSlot + codeSize + ` ` + escapeText(line) + `}` + parBreak
	case lineBulletItem:
		return `{` + bulletTok + ` ` + escapeText(line[2:]) + `}` + parBreak
	case lineOrderedItem:
		return `{` + escapeText(line) + `}` + parBreak
	case lineBlank:
		return parBreak
	default:
		return `{` + escapeText(line) + `}` + parBreak
	}
}

// headingRun emits a bold heading at the given size with two paragraph
// breaks, the consistent spacing before whatever follows.
func headingRun(size, text string) string {
	return `{\b` + size + ` ` + escapeText(text) + `}` + parBreak + parBreak
}

// Render converts one Markdown document's line stream into an RTF fragment.
// The fragment carries no header or font table; assembling those is the
// caller's responsibility. If title is non-empty, a bold large title run
// followed by two paragraph breaks precedes the body. The fragment always
// ends with two trailing paragraph breaks.
func Render(content, title string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(`{\b` + titleSize + ` ` + escapeText(title) + `}` + parBreak + parBreak + "\n")
	}

	wroteBody := false
	if content != "" {
		for _, line := range strings.Split(content, "\n") {
			b.WriteString(renderLine(strings.TrimSpace(line)))
			b.WriteString("\n")
			wroteBody = true
		}
	}

	// The title's own breaks double as the trailing ones when the body
	// is empty.
	if wroteBody || title == "" {
		b.WriteString(parBreak + parBreak + "\n")
	}

	return b.String()
}
