// Package markup extracts text from the HTML of ability data pages.
package markup

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// replacements are the characters of wiki text that have a plain
// equivalent used everywhere else in the data.
var replacements = map[rune]rune{
	'\u00a0': ' ',
	'\u300c': '[',
	'\u300d': ']',
	'\u00ba': '\u00b0',
}

// Normalize cleans up wiki text: non-breaking spaces and CJK brackets become
// their ASCII forms and invisible format runes (zero width space,
// left-to-right mark) are dropped.
func Normalize(s string) string {
	t := transform.Chain(
		runes.Remove(runes.In(unicode.Cf)),
		runes.Map(func(r rune) rune {
			if to, ok := replacements[r]; ok {
				return to
			}
			return r
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Text returns the text of an HTML fragment. Definition terms and
// descriptions are followed by a space so that "<dt>Damage:</dt><dd>10</dd>"
// reads "Damage: 10".
func Text(fragment string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeText(&sb, n)
	}
	return strings.TrimSpace(Normalize(sb.String())), nil
}

// nodeText is Text for an already parsed node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	writeText(&sb, n)
	return strings.TrimSpace(Normalize(sb.String()))
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}

	if n.Type == html.ElementNode && (n.DataAtom == atom.Dt || n.DataAtom == atom.Dd) {
		sb.WriteByte(' ')
	}
}
