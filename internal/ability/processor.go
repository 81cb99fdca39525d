// Package ability turns the parameter table of an ability data page into
// processed fields: leveling text becomes per-rank attributes, cooldown and
// cost become single attributes, everything else stays text.
package ability

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/and-zheng/lolstaticdata/internal/leveling"
	"github.com/and-zheng/lolstaticdata/internal/markup"
)

// ErrNoSkill is returned for pages without a "skill" parameter.
var ErrNoSkill = errors.New("ability page has no skill parameter")

const (
	levelingPrefix = "leveling"
	cooldownParam  = "cooldown"
	costParam      = "cost"
	skillParam     = "skill"
	nameParam      = "name"

	basedOnLevel = "(based on level)"
)

// rawCooldowns and rawCosts are values kept as text: the resource they are
// written in is not a number series.
var (
	rawCooldowns = []string{"(based on  Phenomenal Evil stacks)"}
	rawCosts     = []string{"10 Moonlight + 60"}
)

// Processor processes ability pages. It is safe for concurrent use.
type Processor struct {
	parser  *leveling.Parser
	exclude map[string]struct{}
	strict  bool
}

// NewProcessor creates a Processor. Parameters named in exclude are dropped
// from every page. In strict mode any parse error other than a known
// unparsable leveling text fails the page; otherwise the field keeps its raw
// text and the error is logged.
func NewProcessor(parser *leveling.Parser, exclude []string, strict bool) *Processor {
	ex := make(map[string]struct{}, len(exclude))
	for _, p := range exclude {
		ex[p] = struct{}{}
	}
	return &Processor{parser: parser, exclude: ex, strict: strict}
}

// Process builds an Ability from the rows of a parameter table.
// Field order is kept; a repeated parameter overwrites its value in place.
// A skill letter outside P/I/Q/W/E/R leaves leveling fields as text.
func (p *Processor) Process(rows []markup.Row) (Ability, error) {
	var a Ability
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.Value == "" {
			continue
		}
		if _, ok := p.exclude[row.Parameter]; ok {
			continue
		}
		f := Field{Name: row.Parameter, Text: row.Value}
		if i, ok := index[row.Parameter]; ok {
			a.Fields[i] = f
			continue
		}
		index[row.Parameter] = len(a.Fields)
		a.Fields = append(a.Fields, f)
	}

	if f, ok := a.Field(nameParam); ok {
		a.Name = f.Text
	}
	skill, ok := a.Field(skillParam)
	if !ok {
		return Ability{}, fmt.Errorf("%s: %w", a.Name, ErrNoSkill)
	}
	kind, err := leveling.ParseKind(skill.Text)
	if err != nil {
		slog.Warn("unknown ability slot, keeping leveling as text", "ability", a.Name, "skill", skill.Text)
	}
	a.Kind = kind

	for i, f := range a.Fields {
		parsed, err := p.field(f, kind)
		if err != nil {
			return Ability{}, fmt.Errorf("%s: %s: %w", a.Name, f.Name, err)
		}
		a.Fields[i] = parsed
	}
	return a, nil
}

func (p *Processor) field(f Field, kind leveling.Kind) (Field, error) {
	switch {
	case strings.HasPrefix(f.Name, levelingPrefix) && kind.Ranked():
		attrs, err := p.parser.ParseLeveling(f.Text, kind)
		if err != nil {
			return p.fallback(f, err)
		}
		f.Leveling = attrs
		return f, nil

	case f.Name == cooldownParam:
		text := f.Text
		if containsAny(text, rawCooldowns) {
			return f, nil
		}
		// per-rank cooldowns also mention level scaling of the whole series
		if strings.Contains(text, basedOnLevel) && strings.Contains(text, " / ") {
			text = strings.TrimSpace(strings.ReplaceAll(text, basedOnLevel, ""))
		}
		return p.attribute(f, text)

	case f.Name == costParam:
		if containsAny(f.Text, rawCosts) {
			return f, nil
		}
		return p.attribute(f, f.Text)
	}
	return f, nil
}

// attribute parses a single-attribute parameter. The parameter name is put
// in front of the text so that "50 + 10%" is read as two flat terms.
func (p *Processor) attribute(f Field, text string) (Field, error) {
	attr, err := p.parser.ParseAttribute(f.Name, f.Name+": "+text)
	if err != nil {
		return p.fallback(f, err)
	}
	f.Attribute = &attr
	return f, nil
}

func (p *Processor) fallback(f Field, err error) (Field, error) {
	if errors.Is(err, leveling.ErrUnparsableSegment) {
		slog.Warn("leveling text has no per-rank values, keeping text", "parameter", f.Name, "text", f.Text)
		return f, nil
	}
	if p.strict {
		return Field{}, err
	}
	slog.Warn("could not parse parameter, keeping text", "parameter", f.Name, "text", f.Text, "err", err)
	return f, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
