package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/leduc-holdem/domain/deck"
	"github.com/luca-patrignani/leduc-holdem/domain/poker"
	"github.com/luca-patrignani/leduc-holdem/ledger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "leduc",
		Short:         "Deal and judge 52-card Leduc Hold'em hands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfig(v, cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "info", "trace, debug, info, warn or error")

	root.AddCommand(newDealCmd(v), newJudgeCmd(v))
	return root
}

// newLogger creates a slog logger backed by the PTerm logger.
func newLogger(level string) (*slog.Logger, error) {
	l, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(l))
	return slog.New(handler), nil
}

func newDealCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal hands straight to showdown and report the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			return runDeal(cmd, cfg, logger)
		},
	}
	cmd.Flags().Int("players", 2, "number of seats")
	cmd.Flags().Int("hands", 1, "number of hands to deal")
	cmd.Flags().Uint("ante", 1, "chips each seat puts in the pot")
	cmd.Flags().String("seed", "", "seed for a reproducible shuffle")
	cmd.Flags().Bool("no-public", false, "judge before the public card is revealed")
	cmd.Flags().String("out", "", "write the hand history as JSON lines to this file")
	return cmd
}

func runDeal(cmd *cobra.Command, cfg Config, logger *slog.Logger) error {
	src := deck.NewRandomSource()
	if cfg.Seed != "" {
		src = deck.NewSeededSource([]byte(cfg.Seed))
	}
	history := ledger.NewHistory()

	logger.Info("dealing", "players", cfg.Players, "hands", cfg.Hands, "seeded", cfg.Seed != "")
	summary, err := playHands(cfg, deck.NewDealer(src), poker.NewJudger(), history, logger)
	if err != nil {
		logger.Error("hand failed", "error", err)
		return err
	}
	if err := history.Verify(); err != nil {
		return fmt.Errorf("hand history corrupted: %w", err)
	}

	if cfg.Out != "" {
		if err := writeHistory(cfg.Out, history); err != nil {
			return err
		}
		logger.Info("hand history written", "path", cfg.Out, "hands", history.Len())
	}

	if cfg.Hands == 1 {
		latest, err := history.GetLatest()
		if err != nil {
			return err
		}
		panel, err := recordPanel(latest.Hand)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), panel)
	}
	table, err := summaryTable(summary)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

func writeHistory(path string, history *ledger.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := history.WriteJSONLines(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// recordPanel renders a recorded hand the same way as a freshly judged one.
// A face-down hand stays the zero Card.
func recordPanel(r ledger.HandRecord) (string, error) {
	if len(r.InChips) != len(r.Hands) || len(r.Folded) != len(r.Hands) {
		return "", fmt.Errorf("malformed record: %d hands, %d chips, %d folded",
			len(r.Hands), len(r.InChips), len(r.Folded))
	}
	players := make([]poker.Player, len(r.Hands))
	for i, h := range r.Hands {
		c, err := recordedCard(h)
		if err != nil {
			return "", fmt.Errorf("player %d: %w", i, err)
		}
		players[i] = poker.Player{Hand: c, InChips: r.InChips[i], Status: poker.StatusActive}
		if i < len(r.Players) {
			players[i].Name = r.Players[i]
		}
		if r.Folded[i] {
			players[i].Status = poker.StatusFolded
		}
	}
	var public *poker.Card
	if r.Public != "" {
		c, err := recordedCard(r.Public)
		if err != nil {
			return "", fmt.Errorf("public card: %w", err)
		}
		public = &c
	}
	return outcomePanel(players, public, poker.Outcome{Winners: r.Winners, Payoffs: r.Payoffs}), nil
}

func recordedCard(s string) (poker.Card, error) {
	if s == poker.FaceDown {
		return poker.Card{}, nil
	}
	return poker.ParseCard(s)
}

func newJudgeCmd(v *viper.Viper) *cobra.Command {
	var (
		hands  []string
		public string
		chips  []uint
		folded []int
	)
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Judge a single finished hand",
		Example: "  leduc judge --hand SA --hand C2 --public S2 --chips 10,10\n" +
			"  leduc judge --hand SK --hand CQ --hand D4 --folded 2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v.GetString("log-level"))
			if err != nil {
				return err
			}
			players, card, err := parseHand(hands, public, chips, folded)
			if err != nil {
				return err
			}
			o, err := poker.NewJudger().Judge(players, card)
			if err != nil {
				logger.Error("cannot judge hand", "error", err)
				return err
			}
			logger.Debug("hand judged", "winners", o.Winners, "payoffs", o.Payoffs)
			fmt.Fprintln(cmd.OutOrStdout(), outcomePanel(players, card, o))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&hands, "hand", nil, "hole card of the next seat, e.g. SA (repeat per seat)")
	cmd.Flags().StringVar(&public, "public", "", "public card, omitted when not revealed")
	cmd.Flags().UintSliceVar(&chips, "chips", nil, "chips put in by each seat (default 1 each)")
	cmd.Flags().IntSliceVar(&folded, "folded", nil, "zero-based seats that folded")
	cmd.MarkFlagRequired("hand")
	return cmd
}

// parseHand builds the judged players from the command line values.
func parseHand(hands []string, public string, chips []uint, folded []int) ([]poker.Player, *poker.Card, error) {
	if len(hands) == 0 {
		return nil, nil, fmt.Errorf("no hands given")
	}
	if len(chips) != 0 && len(chips) != len(hands) {
		return nil, nil, fmt.Errorf("got %d chip amounts for %d hands", len(chips), len(hands))
	}

	players := make([]poker.Player, len(hands))
	for i, h := range hands {
		c, err := poker.ParseCard(h)
		if err != nil {
			return nil, nil, fmt.Errorf("seat %d: %w", i, err)
		}
		players[i] = poker.Player{
			Name:    seatName(i),
			Hand:    c,
			Status:  poker.StatusActive,
			InChips: 1,
		}
		if len(chips) != 0 {
			players[i].InChips = chips[i]
		}
	}
	for _, f := range folded {
		if f < 0 || f >= len(players) {
			return nil, nil, fmt.Errorf("folded seat %d out of range", f)
		}
		players[f].Status = poker.StatusFolded
	}

	var card *poker.Card
	if strings.TrimSpace(public) != "" {
		c, err := poker.ParseCard(public)
		if err != nil {
			return nil, nil, fmt.Errorf("public card: %w", err)
		}
		card = &c
	}
	return players, card, nil
}
