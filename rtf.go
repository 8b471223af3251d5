package md2rtf

import (
	"fmt"
	"strings"
)

// RTF control tokens shared by the renderer, assembler, and optimizer.
const (
	parBreak  = `\par`
	pageBreak = `\page`
	bulletTok = `\bullet`

	serifSlot = `\f0`
	monoSlot  = `\f1`

	// Font sizes in half-points: title 20pt, headings 18/16/14pt,
	// body 12pt, code and byline 10pt.
	titleSize    = `\fs40`
	heading1Size = `\fs36`
	heading2Size = `\fs32`
	heading3Size = `\fs28`
	bodySize     = `\fs24`
	codeSize     = `\fs20`
	bylineSize   = `\fs20`
)

// combinedTitle is the fixed title of the assembled document.
const combinedTitle = "Combined Markdown Document"

// rtfEscaper escapes the three RTF-significant characters in document text.
// Everything else passes through unchanged (no Unicode escaping).
var rtfEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
)

// escapeText makes arbitrary text safe to embed in an RTF group.
func escapeText(s string) string {
	return rtfEscaper.Replace(s)
}

// rtfHeader builds the document preamble: RTF version, ANSI charset, and a
// two-slot font table (slot 0 serif body, slot 1 monospace code), with the
// body font and size selected as the initial state.
func rtfHeader(serifFont, monoFont string) string {
	return fmt.Sprintf(`{\rtf1\ansi\deff0{\fonttbl{\f0 %s;}{\f1 %s;}}\f0`+bodySize+"\n",
		escapeText(serifFont), escapeText(monoFont))
}

// rtfTitleBlock builds the fixed combined-document title and the italic
// byline naming the number of included documents.
func rtfTitleBlock(docCount int) string {
	noun := "documents"
	if docCount == 1 {
		noun = "document"
	}
	var b strings.Builder
	b.WriteString(`{\b` + titleSize + ` ` + combinedTitle + `}` + parBreak + "\n")
	fmt.Fprintf(&b, `{\i`+bylineSize+` Includes %d %s}`+parBreak+parBreak+"\n", docCount, noun)
	return b.String()
}

// assembleRTF concatenates rendered fragments into one RTF document:
// header, title block, fragments separated by page breaks (no separator
// after the last), closing brace.
func assembleRTF(fragments []string, serifFont, monoFont string) string {
	var b strings.Builder
	b.WriteString(rtfHeader(serifFont, monoFont))
	b.WriteString(rtfTitleBlock(len(fragments)))
	b.WriteString(strings.Join(fragments, pageBreak+"\n"))
	b.WriteString("}")
	return b.String()
}
