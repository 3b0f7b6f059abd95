// engine is a terminal game engine shell: re-entrant logic units, a managed
// display, and a Bubble Tea front end.
//
// Usage:
//
//	engine run               - Run the engine in this terminal
//	engine serve             - Start SSH server for remote sessions
//	engine list              - List built-in units
//	engine display           - Inspect or change persisted display state
//
// Global flags:
//
//	--config <path> - Engine config YAML (default: search standard locations)
//	--db <path>     - Options database path (default: ~/.tuiengine/options.db)
//	--fps <rate>    - Override the configured tick rate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "TUI Engine - re-entrant game units in your terminal",
	Long: `TUI Engine hosts re-entrant game logic units behind a managed
terminal display.

Available commands:
  run      - Run the engine in the current terminal
  serve    - Start SSH server for remote sessions
  list     - Show built-in units
  display  - Inspect or change persisted display state

Examples:
  engine run
  engine run --unit bounce
  engine serve --ssh :2222
  engine display toggle fullscreen`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tuiengine/options.db", "Path to options database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(displayCmd)
}
