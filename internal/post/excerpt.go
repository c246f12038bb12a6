package post

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultExcerptLength is the cut-off for auto-derived excerpts.
const DefaultExcerptLength = 150

// GenerateExcerpt derives a short plain-text summary from rich-text
// content: tags stripped, whitespace collapsed, and anything past maxLen
// cut off with a trailing ellipsis.
func GenerateExcerpt(content string, maxLen int) string {
	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}
