package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slots lists ability slots in output order: the passive first, then the
// four keys.
var Slots = []string{"i", "q", "w", "e", "r"}

// Manifest names the champions to process and the ability pages of each slot.
type Manifest struct {
	Champions []Champion `yaml:"champions"`
}

// Champion is one manifest entry. A slot may hold several abilities
// (transforms, recasts).
type Champion struct {
	Name      string              `yaml:"name"`
	Abilities map[string][]string `yaml:"abilities"`
}

// LoadManifest reads a manifest from a YAML file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	for i, ch := range m.Champions {
		if ch.Name == "" {
			return Manifest{}, fmt.Errorf("manifest %s: champion %d has no name", path, i)
		}
		for slot := range ch.Abilities {
			if !isSlot(slot) {
				return Manifest{}, fmt.Errorf("manifest %s: %s: unknown slot %q", path, ch.Name, slot)
			}
		}
	}
	return m, nil
}

func isSlot(s string) bool {
	for _, slot := range Slots {
		if strings.EqualFold(s, slot) {
			return true
		}
	}
	return false
}

// pageDir returns the directory holding a champion's pages. Champions sold
// as a pair keep their pages under the rider's name.
func pageDir(champion string) string {
	if champion == "Kled & Skaarl" {
		return "Kled"
	}
	return champion
}
