package md2rtf

import (
	"strings"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want lineKind
	}{
		{"heading 1", "# Title", lineHeading1},
		{"heading 2", "## Section", lineHeading2},
		{"heading 3", "### Subsection", lineHeading3},
		{"bold span", "has **bold** text", lineBoldSpan},
		{"italic span", "has *italic* text", lineItalicSpan},
		{"bold wins over italic", "**bold** and *italic*", lineBoldSpan},
		{"code fence", "```go", lineCodeFence},
		{"dash bullet", "- item", lineBulletItem},
		{"star bullet is caught by the italic test first", "* item", lineItalicSpan},
		{"ordered item", "1. first", lineOrderedItem},
		{"ordered item multi digit", "42. answer", lineOrderedItem},
		{"blank", "", lineBlank},
		{"plain", "just text", linePlain},
		{"hash without space is plain", "#tag", linePlain},
		{"heading containing bold stays a heading", "# **loud**", lineHeading1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyLine(tt.line); got != tt.want {
				t.Errorf("classifyLine(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestRenderLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "heading 1",
			line: "# Title",
			want: `{\b\fs36 Title}\par\par`,
		},
		{
			name: "heading 2",
			line: "## Section",
			want: `{\b\fs32 Section}\par\par`,
		},
		{
			name: "heading 3",
			line: "### Sub",
			want: `{\b\fs28 Sub}\par\par`,
		},
		{
			name: "bold span",
			line: "some **bold** text",
			want: `{some {\b bold} text}\par`,
		},
		{
			name: "two bold spans",
			line: "**a** and **b**",
			want: `{{\b a} and {\b b}}\par`,
		},
		{
			name: "italic span",
			line: "some *italic* text",
			want: `{some {\i italic} text}\par`,
		},
		{
			name: "bold line leaves single stars literal",
			line: "**bold** and *italic*",
			want: `{{\b bold} and *italic*}\par`,
		},
		{
			name: "lone star stays literal",
			line: "* item",
			want: `{* item}\par`,
		},
		{
			name: "code fence marker",
			line: "```go",
			want: `{\f1\fs20 ` + "```go" + `}\par`,
		},
		{
			name: "dash bullet",
			line: "- item",
			want: `{\bullet item}\par`,
		},
		{
			name: "ordered item keeps its number",
			line: "1. first",
			want: `{1. first}\par`,
		},
		{
			name: "blank line",
			line: "",
			want: `\par`,
		},
		{
			name: "plain line",
			line: "plain text",
			want: `{plain text}\par`,
		},
		{
			name: "special characters escaped",
			line: `a\b{c}`,
			want: `{a\\b\{c\}}\par`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderLine(tt.line); got != tt.want {
				t.Errorf("renderLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		title   string
		want    string
	}{
		{
			name:    "empty content with title",
			content: "",
			title:   "Empty",
			want:    `{\b\fs40 Empty}\par\par` + "\n",
		},
		{
			name:    "empty content without title",
			content: "",
			title:   "",
			want:    `\par\par` + "\n",
		},
		{
			name:    "single line with title",
			content: "Hello",
			title:   "Doc",
			want: `{\b\fs40 Doc}\par\par` + "\n" +
				`{Hello}\par` + "\n" +
				`\par\par` + "\n",
		},
		{
			name:    "heading and body",
			content: "# Title\n\nBody",
			title:   "",
			want: `{\b\fs36 Title}\par\par` + "\n" +
				`\par` + "\n" +
				`{Body}\par` + "\n" +
				`\par\par` + "\n",
		},
		{
			name:    "lines are trimmed before classification",
			content: "   # Indented",
			title:   "",
			want: `{\b\fs36 Indented}\par\par` + "\n" +
				`\par\par` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Render(tt.content, tt.title); got != tt.want {
				t.Errorf("Render(%q, %q) = %q, want %q", tt.content, tt.title, got, tt.want)
			}
		})
	}
}

func TestRender_TitleEscaped(t *testing.T) {
	t.Parallel()

	got := Render("", `a{b}`)
	want := `{\b\fs40 a\{b\}}\par\par` + "\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Every rendered text run must sit inside a brace group so the optimizer's
// whitespace rewrites cannot merge text into an adjacent control word.
func TestRender_BalancedBraces(t *testing.T) {
	t.Parallel()

	content := "# One\n\nSome **bold** and *italic*\n\n- a\n- b\n\n```\ncode {here}\n```\n\n1. x"
	got := Render(content, "Title")

	opens := strings.Count(got, "{") - strings.Count(got, `\{`)
	closes := strings.Count(got, "}") - strings.Count(got, `\}`)
	if opens != closes {
		t.Errorf("unbalanced braces: %d open, %d close in %q", opens, closes, got)
	}
}
