package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/and-zheng/lolstaticdata/internal/leveling"
)

// Config holds all configuration for lolstatic.
type Config struct {
	// Pages
	PagesDir string `yaml:"pages_dir" env:"LOLSTATIC_PAGES_DIR"`
	Lazy     bool   `yaml:"lazy"      env:"LOLSTATIC_LAZY"`

	// Processing
	Workers int  `yaml:"workers" env:"LOLSTATIC_WORKERS"`
	Strict  bool `yaml:"strict"  env:"LOLSTATIC_STRICT"`

	// Logging
	LogLevel string `yaml:"log_level" env:"LOLSTATIC_LOG_LEVEL"`

	// ExcludedParameters are page parameters dropped before processing.
	ExcludedParameters []string `yaml:"excluded_parameters"`

	// MissingAbilities lists, per champion, ability pages that are linked but
	// were never published.
	MissingAbilities map[string][]string `yaml:"missing_abilities"`

	// Exceptions extend the built-in leveling exception table.
	Exceptions leveling.Exceptions `yaml:"exceptions"`
}

// defaultExcludedParameters are page parameters that are not ability data:
// media links, map availability and rows of embedded champion tables.
var defaultExcludedParameters = []string{
	"callforhelp", "flavorsound", "video", "video2", "yvideo", "yvideo2", "flavor sound",
	"video 2", "YouTube video", "YouTube video 2", "Not applicable to be stolen.",
	"Stealable", "All maps",
	// Bard: chime and meep progression table
	"15", "30", "45", "55", "60", "75", "90", "100", "145", "190", "235", "280", "325",
	"Chimes", "3:20", "Meep limit increased to 2.", "9:10", "Slow increased to 35%.", "15:50",
	"Recharge time reduced to 6 seconds.", "21:40", "Recharge time reduced to 5 seconds.",
	"28:20", "Recharge time reduced to 4 seconds.", "34:10", "Slow increased to 75%.",
	"40:50", "Meep limit increased to 9.",
	"Displays additional information with effect table to the right.",
	// Pyke: bonus health conversion table
	"25", "80", "400", "650", "800", "900", "950", "1000", "1200", "2100", "2500", "2600",
	"2750", "3000", "3733", "Abyssal Mask Abyssal Mask", "Black Cleaver Black Cleaver",
	"32.1", "Catalyst of Aeons Catalyst of Aeons", "21.4",
	"Dead Man's Plate Dead Man's Plate", "13.7", "Doran's Shield Doran's Shield",
	"Summoner's Rift", "78.2", "Frostfang Frostfang", "Guardian's Hammer Guardian's Hammer",
	"Howling Abyss", "10.7", "Harrowing Crescent Harrowing Crescent", "14.3",
	"Infernal Mask Infernal Mask", "29.3", "Knight's Vow Knight's Vow",
	"Oblivion Orb Oblivion Orb", "99.3", "Phage Phage", "28.6", "Relic Shield Relic Shield",
	"Rod of Ages (Quick Charge) Rod of Ages (Quick Charge)",
	"Rylai's Crystal Scepter Rylai's Crystal Scepter",
	"Shurelya's Reverie Shurelya's Reverie", "5.7", "Spellthief's Edge Spellthief's Edge",
	"Sterak's Gage Sterak's Gage", "30.4", "Thornmail Thornmail", "72.1",
	"Trinity Fusion Trinity Fusion", "57.1",
	// Zoe: spell thief item list
	"Mercurial Scimitar", "Randuin's Omen", "Hextech Protobelt-01", "Youmuu's Ghostblade",
	"Black Mist Scythe", "Runesteel Spaulders", "Edge of Night", "Targon's Buckler",
	"Pauldrons of Whiterock",
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		PagesDir: "pages",
		Workers:  8,
		LogLevel: "info",
		MissingAbilities: map[string][]string{
			"Annie":   {"Command Tibbers"},
			"Jinx":    {"Switcheroo! 2"},
			"Nidalee": {"Aspect of the Cougar 2"},
			"Pyke":    {"Death from Below 2"},
			"Rumble":  {"Electro Harpoon 2"},
			"Shaco":   {"Command Hallucinate"},
			"Syndra":  {"Force of Will 2"},
			"Taliyah": {"Seismic Shove 2"},
		},
		ExcludedParameters: slices.Clone(defaultExcludedParameters),
	}
}

// Load loads config from a YAML file and applies LOLSTATIC_* environment
// overrides. If the file doesn't exist, defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// ParserExceptions returns the built-in exception table extended with the
// configured entries.
func (c Config) ParserExceptions() leveling.Exceptions {
	return leveling.DefaultExceptions().Merge(c.Exceptions)
}
