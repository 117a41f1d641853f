package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupTags are the inline elements search engines leave around highlighted terms
var markupTags = map[string]bool{
	"a": true, "b": true, "br": true, "div": true, "em": true, "i": true,
	"li": true, "p": true, "span": true, "strong": true, "ul": true,
}

// plainText returns s with HTML markup removed and entities decoded for
// spreadsheet cells. Text containing anything other than known inline markup
// (e.g. "Acme <Regional>") is returned unchanged.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	plain := true
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := goquery.NodeName(sel)
		switch name {
		case "html", "head", "body":
			return true
		}
		plain = markupTags[name]
		return plain
	})
	if !plain {
		return s
	}
	return doc.Text()
}
