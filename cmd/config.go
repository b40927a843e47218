package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/leduc-holdem/domain/deck"
)

// Config drives the deal command. Every field can be set by flag, by a
// LEDUC_* environment variable or by the optional config file.
type Config struct {
	Players  int
	Hands    int
	Ante     uint
	Seed     string
	NoPublic bool
	Out      string
	LogLevel string
}

// bindConfig wires the flags of cmd into v and reads the config file when
// one was given.
func bindConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("LEDUC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	c := Config{
		Players:  v.GetInt("players"),
		Hands:    v.GetInt("hands"),
		Ante:     v.GetUint("ante"),
		Seed:     v.GetString("seed"),
		NoPublic: v.GetBool("no-public"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every hand can be dealt from a single deck.
func (c Config) Validate() error {
	if c.Players < 2 {
		return fmt.Errorf("at least 2 players are required, got %d", c.Players)
	}
	cards := c.Players
	if !c.NoPublic {
		cards++
	}
	if cards > deck.DeckSize {
		return fmt.Errorf("%d players need %d cards, the deck holds %d", c.Players, cards, deck.DeckSize)
	}
	if c.Hands < 1 {
		return fmt.Errorf("at least 1 hand is required, got %d", c.Hands)
	}
	if c.Ante == 0 {
		return fmt.Errorf("ante must be positive")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
