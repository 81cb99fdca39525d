package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/and-zheng/lolstaticdata/internal/ability"
	"github.com/and-zheng/lolstaticdata/internal/leveling"
	"github.com/and-zheng/lolstaticdata/internal/markup"
	"github.com/and-zheng/lolstaticdata/internal/pages"
	"github.com/and-zheng/lolstaticdata/internal/roster"
)

func parseCmd(a *app) *cobra.Command {
	var (
		kind     string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse a leveling block (read from stdin when no text is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := leveling.ParseKind(kind)
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			if fragment {
				if text, err = markup.Text(text); err != nil {
					return err
				}
			}
			attrs, err := a.parser.ParseLeveling(text, k)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), attrs)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "Q", "Ability kind (P, Q, W, E, R)")
	cmd.Flags().BoolVar(&fragment, "html", false, "Input is an HTML fragment copied from a page")
	return cmd
}

func attributeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attribute NAME BODY",
		Short: "Parse the text of a single attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			attr, err := a.parser.ParseAttribute(args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), attr)
		},
	}
}

func abilityCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "ability [CHAMPION NAME]",
		Short: "Process one saved ability data page",
		Args: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []markup.Row
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				if rows, err = markup.ParameterRows(f); err != nil {
					return fmt.Errorf("parsing page %s: %w", file, err)
				}
			} else {
				cache, err := pages.NewCache(a.cfg.PagesDir, true)
				if err != nil {
					return err
				}
				if !cache.Exists(pages.Path(args[0], args[1])) {
					return fmt.Errorf("no saved page for %s %q under %s", args[0], args[1], a.cfg.PagesDir)
				}
				if rows, err = cache.Ability(args[0], args[1]); err != nil {
					return err
				}
			}

			proc := ability.NewProcessor(a.parser, a.cfg.ExcludedParameters, a.cfg.Strict)
			ab, err := proc.Process(rows)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ab)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the page from a file instead of the pages directory")
	return cmd
}

func rosterCmd(a *app) *cobra.Command {
	var (
		manifestPath string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Process every champion listed in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := roster.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			cache, err := pages.NewCache(a.cfg.PagesDir, a.cfg.Lazy)
			if err != nil {
				return err
			}
			slog.Info("page cache ready", "dir", a.cfg.PagesDir, "cached", cache.Len(), "lazy", a.cfg.Lazy)
			proc := ability.NewProcessor(a.parser, a.cfg.ExcludedParameters, a.cfg.Strict)
			runner := roster.NewRunner(cache, proc, a.cfg.MissingAbilities, a.cfg.Workers)

			results, err := runner.Run(cmd.Context(), m)
			if err != nil {
				return err
			}

			if outPath == "" {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := writeJSON(f, results); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "roster.yaml", "Roster manifest (YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON to a file instead of stdout")
	return cmd
}

func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
