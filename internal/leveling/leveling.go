// Package leveling turns the leveling text of an ability page, such as
// "Magic Damage: 80 / 115 / 150 / 185 / 220 (+ 70% AP)", into per-rank
// attributes.
//
// Parsing is pure: a Parser holds only configuration and may be shared
// between goroutines.
package leveling

import "strings"

// DefaultLevels is the number of ranks of a basic ability.
const DefaultLevels = 5

// Parser parses leveling text.
type Parser struct {
	levels int
	exc    Exceptions
}

// Option configures a Parser.
type Option func(*Parser)

// WithLevels sets how many ranks a value written once is repeated over.
func WithLevels(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.levels = n
		}
	}
}

// WithExceptions replaces the built-in exception table.
func WithExceptions(e Exceptions) Option {
	return func(p *Parser) {
		p.exc = e
	}
}

// New creates a Parser with the built-in exception table.
func New(opts ...Option) *Parser {
	p := &Parser{
		levels: DefaultLevels,
		exc:    DefaultExceptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = New()

// ParseLeveling parses a leveling block with the default parser.
func ParseLeveling(text string, kind Kind) ([]Attribute, error) {
	return std.ParseLeveling(text, kind)
}

// ParseAttribute parses one already segmented attribute with the default parser.
func ParseAttribute(name, body string) (Attribute, error) {
	return std.ParseAttribute(name, body)
}

// ParseLeveling parses a whole leveling block. The first attribute that
// fails to parse fails the block.
//
// Ultimates rank up at levels 6, 11 and 16, so for R every five-rank series
// is reduced to ranks 1, 3 and 5.
func (p *Parser) ParseLeveling(text string, kind Kind) ([]Attribute, error) {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = p.exc.strip(text)

	segs, err := p.Segment(text)
	if err != nil {
		return nil, err
	}

	attrs := make([]Attribute, 0, len(segs))
	for _, seg := range segs {
		attr, err := p.ParseAttribute(seg.Label, seg.Span)
		if err != nil {
			return nil, err
		}
		if kind == R {
			attr = attr.ultimate()
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}
