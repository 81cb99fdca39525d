package leveling

import (
	"strings"
	"unicode"
)

// Segment is one labeled section of a leveling block.
type Segment struct {
	Label string // label without the colon
	Body  string // text owned by the label
	Span  string // label, colon and body as written
}

// Segment splits a leveling block into labeled sections in source order.
// Text before the first label belongs to no section and is dropped.
func (p *Parser) Segment(text string) ([]Segment, error) {
	if p.exc.isUnparsable(text) {
		return nil, failf(ErrUnparsableSegment, text)
	}

	labels := scanLabels(text)
	segs := make([]Segment, 0, len(labels))
	for i, l := range labels {
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1].start
		}
		segs = append(segs, Segment{
			Label: strings.TrimSpace(text[l.start:l.colon]),
			Body:  strings.TrimSpace(text[l.colon+1 : end]),
			Span:  strings.TrimSpace(text[l.start:end]),
		})
	}
	return p.exc.fix(segs), nil
}

func splitSpan(span string) Segment {
	label, body, _ := strings.Cut(span, ":")
	return Segment{
		Label: strings.TrimSpace(label),
		Body:  strings.TrimSpace(body),
		Span:  span,
	}
}

type labelMatch struct {
	start, colon int
}

func isLabelRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	return r == '\'' || r == '-' || r == '.'
}

func isLabelGap(r rune) bool {
	return unicode.IsSpace(r) || r == '-'
}

// scanLabels finds the labels of a leveling block.
//
//	label := word { gap | word } ':'
//	word  := [A-Za-z0-9'.-]+
//	gap   := whitespace | '-'
//
// A label starts at the first word rune of an unbroken run of words and
// gaps, and the run must end at the colon. Any other rune breaks the run.
func scanLabels(text string) []labelMatch {
	var out []labelMatch
	start := -1
	for i, r := range text {
		switch {
		case isLabelRune(r):
			if start < 0 {
				start = i
			}
		case isLabelGap(r):
			// gaps only continue a run that already has a word
		case r == ':' && start >= 0:
			out = append(out, labelMatch{start: start, colon: i})
			start = -1
		default:
			start = -1
		}
	}
	return out
}
