package md2epub

import (
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "basic heading",
			input:        "# Hello World",
			wantContains: []string{"<h1", "Hello World", "</h1>"},
		},
		{
			name:         "GFM table",
			input:        "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<th>", "<td>"},
		},
		{
			name:         "GFM strikethrough",
			input:        "~~deleted~~",
			wantContains: []string{"<del>", "deleted"},
		},
		{
			name:         "footnote",
			input:        "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{"<sup", "footnote"},
		},
		{
			name:         "fenced code with highlighting classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{"<pre", "chroma", "func"},
		},
		{
			name:         "relative image kept as-is",
			input:        "![alt](images/pic.png)",
			wantContains: []string{`<img src="images/pic.png"`, `alt="alt"`},
		},
		{
			name:         "self closing xhtml break",
			input:        "a\n\n---\n\nb",
			wantContains: []string{"<hr />"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ResetIsolatesChapters(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	first, err := conv.ToHTML("Text[^1]\n\n[^1]: one")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	conv.Reset()
	second, err := conv.ToHTML("Text[^1]\n\n[^1]: two")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}

	// After a reset the second document must number its footnotes from
	// scratch, producing the same anchor structure as the first.
	if strings.Count(first, "fn:1") != strings.Count(second, "fn:1") {
		t.Errorf("footnote anchors differ after Reset:\nfirst: %s\nsecond: %s", first, second)
	}
}
