package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "heading and image",
			markdown: "# Title\n![cover](/img/a.jpg)\nSome body text.",
			want:     "Title\n\nSome body text.",
		},
		{
			name:     "emphasis and quotes",
			markdown: "> **bold** and ~~gone~~ *it*",
			want:     "bold and gone it",
		},
		{
			name:     "links and brackets",
			markdown: "Read [the docs](https://example.com) or [this].",
			want:     "Read  or .",
		},
		{
			name:     "list markers",
			markdown: "- one\n- two",
			want:     "one\n two",
		},
		{
			name:     "empty",
			markdown: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDescription(tt.markdown))
		})
	}
}

func TestExtractDescriptionTruncatesOnRunes(t *testing.T) {
	markdown := strings.Repeat("博客", 150)

	description := ExtractDescription(markdown)

	assert.True(t, utf8.ValidString(description))
	assert.Equal(t, DescriptionMaxLength, utf8.RuneCountInString(description))
	assert.Equal(t, strings.Repeat("博客", 100), description)
}

func TestExtractDescriptionHasNoMarkup(t *testing.T) {
	markdown := "## Heading\n\n![a](/a.png) text [link](/x) more ![b](/b.png \"title\")\n\n* item"

	description := ExtractDescription(markdown)

	for _, markup := range []string{"#", "![", "](", "[", "]", "*"} {
		assert.NotContains(t, description, markup)
	}
	assert.LessOrEqual(t, utf8.RuneCountInString(description), DescriptionMaxLength)
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Hello\n\nSome *text* <script>alert(1)</script>")

	assert.NoError(t, err)
	assert.Contains(t, html, "Hello</h1>")
	assert.Contains(t, html, "<em>text</em>")
	assert.NotContains(t, html, "<script>")
}
