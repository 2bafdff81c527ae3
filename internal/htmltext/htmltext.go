// Package htmltext renders an HTML mail body as readable plain text.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Render strips markup from an HTML body and returns its visible text
// with whitespace collapsed. Input that does not parse is returned
// unchanged.
func Render(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style, head").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
