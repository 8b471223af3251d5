package md2rtf

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"backslash", `a\b`, `a\\b`},
		{"open brace", "a{b", `a\{b`},
		{"close brace", "a}b", `a\}b`},
		{"all three", `\{}`, `\\\{\}`},
		{"unicode passes through", "héllo ünïcode", "héllo ünïcode"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := escapeText(tt.input); got != tt.want {
				t.Errorf("escapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRTFHeader(t *testing.T) {
	t.Parallel()

	got := rtfHeader("Times New Roman", "Courier New")
	want := `{\rtf1\ansi\deff0{\fonttbl{\f0 Times New Roman;}{\f1 Courier New;}}\f0\fs24` + "\n"

	if got != want {
		t.Errorf("rtfHeader() = %q, want %q", got, want)
	}
}

func TestRTFHeader_EscapesFontNames(t *testing.T) {
	t.Parallel()

	got := rtfHeader(`Weird{Font}`, "Mono")

	if !strings.Contains(got, `\{Font\}`) {
		t.Errorf("rtfHeader() did not escape font name: %q", got)
	}
}

func TestRTFTitleBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		docCount int
		want     string
	}{
		{
			name:     "single document",
			docCount: 1,
			want: `{\b\fs40 Combined Markdown Document}\par` + "\n" +
				`{\i\fs20 Includes 1 document}\par\par` + "\n",
		},
		{
			name:     "several documents",
			docCount: 3,
			want: `{\b\fs40 Combined Markdown Document}\par` + "\n" +
				`{\i\fs20 Includes 3 documents}\par\par` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := rtfTitleBlock(tt.docCount); got != tt.want {
				t.Errorf("rtfTitleBlock(%d) = %q, want %q", tt.docCount, got, tt.want)
			}
		})
	}
}

func TestAssembleRTF(t *testing.T) {
	t.Parallel()

	got := assembleRTF([]string{"FIRST\n", "SECOND\n"}, "Serif", "Mono")

	if !strings.HasPrefix(got, `{\rtf1\ansi\deff0`) {
		t.Errorf("assembled document missing RTF preamble: %q", got)
	}
	if !strings.HasSuffix(got, "}") {
		t.Errorf("assembled document missing closing brace: %q", got)
	}
	if !strings.Contains(got, "Includes 2 documents") {
		t.Errorf("assembled document missing byline: %q", got)
	}
	if !strings.Contains(got, "FIRST\n"+`\page`+"\nSECOND\n") {
		t.Errorf("fragments not joined with a page break: %q", got)
	}
	if strings.Count(got, `\page`) != 1 {
		t.Errorf("want exactly one page break between two fragments, got %d", strings.Count(got, `\page`))
	}
}

func TestAssembleRTF_SingleFragmentNoPageBreak(t *testing.T) {
	t.Parallel()

	got := assembleRTF([]string{"ONLY\n"}, "Serif", "Mono")

	if strings.Contains(got, `\page`) {
		t.Errorf("single fragment must not carry a page break: %q", got)
	}
	if !strings.Contains(got, "Includes 1 document}") {
		t.Errorf("singular byline expected: %q", got)
	}
}
