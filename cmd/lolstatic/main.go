// Package main provides the lolstatic binary: it turns saved ability data
// pages into structured per-rank values.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/and-zheng/lolstaticdata/internal/config"
	"github.com/and-zheng/lolstaticdata/internal/leveling"
)

const ConfigPath = "config/lolstatic.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	parser *leveling.Parser
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "lolstatic",
		Short: "Parse ability leveling text into per-rank values",
		Long: `lolstatic reads the leveling text of champion abilities, such as
"Magic Damage: 80 / 125 / 170 / 215 / 260 (+ 60% AP)", and prints
the attributes and modifiers it describes as JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cfgPath := ConfigPath
	if p := os.Getenv("LOLSTATIC_CONFIG"); p != "" {
		cfgPath = p
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", cfgPath, "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides config")

	cmd.AddCommand(
		parseCmd(a),
		attributeCmd(a),
		abilityCmd(a),
		rosterCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	// stdout carries the JSON output
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	slog.Debug("config loaded", "path", a.configPath, "pages", cfg.PagesDir, "workers", cfg.Workers, "strict", cfg.Strict)

	a.cfg = cfg
	a.parser = leveling.New(leveling.WithExceptions(cfg.ParserExceptions()))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
