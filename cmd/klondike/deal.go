package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/cards"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print the deal for a seed",
	Long: `Shuffle with --seed, deal, and print the tableau and stock.
Face-down cards are shown in brackets. The same seed always gives the
same deal, in this command and in the game.

Examples:
  klondike deal --seed 42`,
	Args: cobra.NoArgs,
	Run:  runDeal,
}

func runDeal(_ *cobra.Command, _ []string) {
	if flagSeed == 0 {
		fmt.Fprintln(os.Stderr, "Error: --seed is required")
		os.Exit(1)
	}

	deck := cards.NewDeck()
	cards.Shuffle(deck, rand.New(rand.NewSource(flagSeed)))
	printBoard(os.Stdout, klondike.Deal(deck))
}

// printBoard writes each pile bottom to top using card keys.
func printBoard(w io.Writer, b *klondike.Board) {
	for i, p := range b.Tableau {
		fmt.Fprintf(w, "%-12s %s\n", klondike.Tableau(i).String()+":", pileKeys(p))
	}
	fmt.Fprintf(w, "%-12s %s\n", "stock:", pileKeys(b.Stock))
	fmt.Fprintf(w, "%-12s %s\n", "waste:", pileKeys(b.Waste))
}

func pileKeys(p klondike.Pile) string {
	if len(p) == 0 {
		return "-"
	}
	keys := make([]string, len(p))
	for i, c := range p {
		if c.FaceUp {
			keys[i] = c.Key()
		} else {
			keys[i] = "[" + c.Key() + "]"
		}
	}
	return strings.Join(keys, " ")
}
