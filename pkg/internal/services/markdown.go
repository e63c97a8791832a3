package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/viper"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const DescriptionMaxLength = 200

var (
	descriptionMarkupPattern  = regexp.MustCompile(`[~*>#-]+`)
	descriptionLinkPattern    = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)`)
	descriptionBracketPattern = regexp.MustCompile(`\[[^\]]*\]`)
)

// ExtractDescription strips emphasis, heading and list markers, images, links
// and bracketed text from the markdown and keeps the first 200 characters.
func ExtractDescription(markdown string) string {
	text := descriptionMarkupPattern.ReplaceAllString(markdown, "")
	text = descriptionLinkPattern.ReplaceAllString(text, "")
	text = descriptionBracketPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if runes := []rune(text); len(runes) > DescriptionMaxLength {
		text = strings.TrimSpace(string(runes[:DescriptionMaxLength]))
	}

	return text
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.TaskList,
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var markdownSanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts the article markdown into html. Raw html inside the
// markdown is kept by the renderer and then sanitized, unless the settings
// explicitly allow unsafe html.
func RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("unable to render markdown: %v", err)
	}

	if viper.GetBool("markdown.allow_unsafe_html") {
		return buf.String(), nil
	}
	return markdownSanitizer.Sanitize(buf.String()), nil
}
