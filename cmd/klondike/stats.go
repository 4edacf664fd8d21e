package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var (
	flagStatsPlain bool
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deal history",
	Long: `Display totals and the most recent deals.

Opens an interactive table when stdout is a terminal; use --plain
for text output.

Examples:
  klondike stats
  klondike stats --plain --limit 20
  klondike stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print text instead of the interactive table")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent deals to print with --plain")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the deal history")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearDeals(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Deal history cleared.")
		return
	}

	w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagStatsPlain && termErr == nil {
		if err := tui.RunStats(store, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	deals, err := store.RecentDeals(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.Summary(*stats))
	if len(deals) == 0 {
		fmt.Println("No deals recorded yet.")
		return
	}

	fmt.Println()
	fmt.Printf("%-14s %-10s %-20s %s\n", "FINISHED", "OUTCOME", "SEED", "TIME")
	fmt.Println(strings.Repeat("-", 52))
	for _, d := range deals {
		row := tui.DealRow(d)
		fmt.Printf("%-14s %-10s %-20s %s\n", row[0], row[1], row[2], row[3])
	}
}
