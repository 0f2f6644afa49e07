package service

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Excerpt lengths used on the public education pages.
const (
	ArticleExcerptLength = 200
	RelatedExcerptLength = 100
)

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true,
	atom.Ul: true, atom.Ol: true, atom.Tr: true, atom.Td: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Blockquote: true,
}

// PlainText strips markup from rich-text content and collapses whitespace.
// Script and style bodies are dropped.
func PlainText(body string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(body))
	skip := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				skip++
			}
			if blockElements[a] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			a := atom.Lookup(name)
			if (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
			if blockElements[a] {
				b.WriteByte(' ')
			}
		}
	}
}

// Excerpt returns at most limit runes of the plain text, followed by "..."
// when it was cut.
func Excerpt(body string, limit int) string {
	text := PlainText(body)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + "..."
}
