// klondike is Klondike solitaire for the terminal, played with the mouse.
//
// Usage:
//
//	klondike                 - Play (same as "klondike play")
//	klondike play            - Play in this terminal
//	klondike serve           - Start SSH server for remote play
//	klondike stats           - Show deal history
//	klondike deal --seed N   - Print the deal for a seed
//
// Global flags:
//
//	--seed <value>     - RNG seed for the first deal
//	--db <path>        - Database path (default: ~/.klondike/klondike.db)
//	--config <path>    - Custom config YAML
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Klondike solitaire in your terminal",
	Long: `Klondike is the classic patience game, played with the mouse in
your terminal. Drag cards between piles, click the stock to draw.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  stats    - View deal history
  deal     - Print the deal for a seed

Examples:
  klondike
  klondike --seed 42
  klondike serve --ssh :2222
  klondike deal --seed 42`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first deal (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.klondike/klondike.db", "Path to settings and history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dealCmd)
}

// openLogger returns a logger writing to flagLogFile, or discarding when unset.
// The TUI owns the terminal, so logs never go to stdout or stderr here.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "klondike",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
