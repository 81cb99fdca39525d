package leveling

import (
	"slices"
	"strings"
)

// Exceptions is the hand-maintained table of ability texts that the general
// grammar gets wrong. Every entry is an exact string match.
type Exceptions struct {
	// Unparsable leveling texts have no per-rank numbers at all.
	Unparsable []string `yaml:"unparsable"`
	// Removals are phrases cut out of leveling text before segmentation.
	Removals []string `yaml:"removals"`
	// Literals are ratio fragments kept as a word value.
	Literals []string `yaml:"literals"`
	// Fixups replace a known bad segmentation with the corrected one.
	Fixups []SegmentFixup `yaml:"fixups"`
}

// SegmentFixup maps the spans produced for a malformed text to the spans it
// should have produced.
type SegmentFixup struct {
	Malformed []string `yaml:"malformed"`
	Corrected []string `yaml:"corrected"`
}

// DefaultExceptions returns the built-in table.
func DefaultExceptions() Exceptions {
	return Exceptions{
		Unparsable: []string{
			// Nidalee: cougar form ranks follow Aspect of the Cougar.
			"Pounce scales with  Aspect of the Cougar's rank",
			"Cougar form's abilities rank up when  Aspect of the Cougar does",
		},
		Removals: []string{
			// Ekko: Chronobreak
			"(increased by 3% per 1% of health lost in the past 4 seconds)",
		},
		Literals: []string{
			// Nasus: Siphoning Strike
			"Siphoning Strike stacks",
		},
		Fixups: []SegmentFixup{
			{
				// Heimerdinger: rocket count ranges precede their label. Known
				// defect of an older page revision whose spans arrive already
				// split this way (a stray ")" opens the last one); label
				// scanning never produces it from the current page text.
				Malformed: []string{
					"Initial Rocket Magic Damage: 135 / 180 / 225 (+ 45% AP) 2-5",
					"Rocket Magic Damage: 32 / 45 / 58 (+ 12% AP) 6-20",
					"0 Rocket Magic Damage: 16 / 22.5 / 29 (+ 6% AP)",
					"Total Magic Damage: 503 / 697.5 / 892 (+ 183% AP)",
					") Total Minion Magic Damage: 2700 / 3600 / 4500 (+ 900% AP)",
				},
				Corrected: []string{
					"Initial Rocket Magic Damage: 135 / 180 / 225 (+ 45% AP)",
					"2-5 Rocket Magic Damage: 32 / 45 / 58 (+ 12% AP)",
					"6-20 Rocket Magic Damage: 16 / 22.5 / 29 (+ 6% AP)",
					"Total Magic Damage: 503 / 697.5 / 892 (+ 183% AP)",
					"Total Minion Magic Damage: 2700 / 3600 / 4500 (+ 900% AP)",
				},
			},
		},
	}
}

// Merge returns a table holding the entries of both e and o.
func (e Exceptions) Merge(o Exceptions) Exceptions {
	return Exceptions{
		Unparsable: slices.Concat(e.Unparsable, o.Unparsable),
		Removals:   slices.Concat(e.Removals, o.Removals),
		Literals:   slices.Concat(e.Literals, o.Literals),
		Fixups:     slices.Concat(e.Fixups, o.Fixups),
	}
}

func (e Exceptions) isUnparsable(text string) bool {
	return slices.Contains(e.Unparsable, text)
}

func (e Exceptions) isLiteral(fragment string) bool {
	return slices.Contains(e.Literals, fragment)
}

func (e Exceptions) strip(text string) string {
	for _, r := range e.Removals {
		if strings.Contains(text, r) {
			text = strings.TrimSpace(strings.ReplaceAll(text, r, ""))
		}
	}
	return text
}

func (e Exceptions) fix(segs []Segment) []Segment {
	spans := make([]string, len(segs))
	for i, s := range segs {
		spans[i] = s.Span
	}
	for _, f := range e.Fixups {
		if !slices.Equal(spans, f.Malformed) {
			continue
		}
		fixed := make([]Segment, len(f.Corrected))
		for i, span := range f.Corrected {
			fixed[i] = splitSpan(span)
		}
		return fixed
	}
	return segs
}
