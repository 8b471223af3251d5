package md2rtf

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress runs of blank lines to at most one blank line
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Trailing horizontal whitespace on a line
	trailingWhitespace = regexp.MustCompile(`[ \t]+$`)

	// Runs of horizontal whitespace inside a line
	horizontalRuns = regexp.MustCompile(`[ \t]+`)

	// Indented code block (4+ leading spaces)
	indentedCodeLine = regexp.MustCompile(`^ {4,}`)
)

// codeFenceToken marks fenced code block delimiter lines.
const codeFenceToken = "```"

// Normalize collapses redundant whitespace in Markdown content while
// preserving code-block formatting verbatim:
//
//  1. Normalize line endings to \n.
//  2. Strip trailing horizontal whitespace from every line.
//  3. Collapse three or more consecutive newlines to one blank line.
//     Stripping runs first so whitespace-only lines count as blank.
//  4. Collapse internal horizontal whitespace runs to a single space on
//     every line that is neither a code-fence marker nor indented as a
//     code block (4+ leading spaces); those lines keep their internal
//     spacing untouched.
//  5. Trim leading/trailing whitespace from the whole result.
//
// Normalize is idempotent: normalizing already-normalized content returns
// it unchanged.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = trailingWhitespace.ReplaceAllString(line, "")
	}
	content = multipleBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")

	lines = strings.Split(content, "\n")
	for i, line := range lines {
		if !isCodeLine(line) {
			lines[i] = horizontalRuns.ReplaceAllString(line, " ")
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// isCodeLine reports whether a line must keep its internal spacing:
// fenced code markers and indented code blocks.
func isCodeLine(line string) bool {
	return strings.HasPrefix(line, codeFenceToken) || indentedCodeLine.MatchString(line)
}
