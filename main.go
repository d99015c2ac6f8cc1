package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lost-woods/handodds/src/config"
	"github.com/lost-woods/handodds/src/deck"
	"github.com/lost-woods/handodds/src/rng"
	"github.com/lost-woods/handodds/src/server"
)

var (
	zapLogger, _ = zap.NewProduction()
	log          = zapLogger.Sugar()
)

func main() {
	err := newRootCmd(os.Stdout).Execute()
	_ = zapLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "handodds",
		Short:         "Opening hand probabilities for card game decks",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)

	root.AddCommand(newServeCmd(), newCoverageCmd(), newVSCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var dotenv string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dotenv)
			if err != nil {
				return err
			}

			r, h, err := rng.OpenSource(cfg.Source())
			if err != nil {
				log.Errorw("entropy source failed its first health check", "source", cfg.EntropySource, "error", err)
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Infow("starting handodds", "port", cfg.Port, "source", cfg.EntropySource)
			return server.New(ctx, cfg, r, h, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&dotenv, "env-file", ".env", "dotenv file to load before reading the environment")
	return cmd
}

func newCoverageCmd() *cobra.Command {
	var (
		path string
		hand int
	)
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Probability the key card and every element are in the opening hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := deck.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hand") {
				f.HandSize = hand
			}

			summary := deck.Aggregate(f.DeckSize, f.Rows)
			printIssues(cmd.OutOrStdout(), summary.Issues())

			p, err := summary.Coverage(f.HandSize)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Probability the key card is usable: %.2f%%\n", p*100)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "deck file (.json, .yaml or .yml)")
	cmd.Flags().IntVar(&hand, "hand", deck.DefaultHandSize, "override the hand size from the file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newVSCmd() *cobra.Command {
	var (
		path       string
		size, hand int
		vs         = deck.DefaultVS()
	)
	cmd := &cobra.Command{
		Use:   "vs",
		Short: "Probability the VS key card is usable in the opening hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path != "" {
				f, err := deck.Load(path)
				if err != nil {
					return err
				}
				if f.VS == nil {
					return fmt.Errorf("%s has no vs section", path)
				}
				size, hand, vs = f.DeckSize, f.HandSize, *f.VS
			}

			issues := vs.Issues(size, hand)
			printIssues(cmd.OutOrStdout(), issues)
			if deck.HasOverflow(issues) {
				return fmt.Errorf("listed cards exceed the deck size %d", size)
			}

			p, err := vs.Probability(size, hand)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Probability the VS key card is usable: %.2f%%\n", p*100)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&path, "file", "f", "", "deck file with a vs section or flat nA..nD counts; overrides the count flags")
	fl.IntVar(&size, "deck", deck.DefaultDeckSize, "deck size")
	fl.IntVar(&hand, "hand", deck.DefaultHandSize, "hand size")
	fl.IntVar(&vs.Key, "key", vs.Key, "VS key cards")
	fl.IntVar(&vs.VSFire, "vs-fire", vs.VSFire, "VS fire cards")
	fl.IntVar(&vs.VSDark, "vs-dark", vs.VSDark, "VS dark cards")
	fl.IntVar(&vs.VS, "vs", vs.VS, "VS cards with no element")
	fl.IntVar(&vs.Fire, "fire", vs.Fire, "fire cards that are not VS")
	fl.IntVar(&vs.Dark, "dark", vs.Dark, "dark cards that are not VS")
	return cmd
}

func printIssues(w io.Writer, issues []deck.Issue) {
	for _, i := range issues {
		fmt.Fprintf(w, "- %s\n", i.Message)
	}
}
