package utils

import (
	"bytes"
	"html/template"

	"github.com/enescakir/emoji"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy = bluemonday.UGCPolicy()
)

func init() {
	// Force links to open in new tab
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts user-supplied markdown to HTML, sanitizes it,
// then substitutes :shorthand: emoji aliases. All untrusted text shown to
// other users goes through this one path.
func RenderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		// Fallback: sanitize the raw input so nothing unescaped leaks out.
		return template.HTML(emoji.Parse(policy.Sanitize(source)))
	}

	sanitized := policy.SanitizeBytes(buf.Bytes())

	return template.HTML(emoji.Parse(string(sanitized)))
}
