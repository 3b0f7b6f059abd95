package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/options"
	"github.com/vovakirdan/tui-engine/internal/platform/tui"
)

var flagStartUnit string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engine in this terminal",
	Long: `Start the engine in the current terminal.

Controls:
  W/S, arrows - Move selection
  Enter       - Confirm
  B/Esc       - Back to menu
  P           - Pause
  O           - Display settings
  Q/Ctrl+C    - Quit

Examples:
  engine run
  engine run --unit bounce
  engine run --config ./my-engine.yaml --fps 30`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagStartUnit, "unit", "", "Unit to start with (default: config's start_unit)")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}
	if flagStartUnit != "" {
		cfg.Engine.StartUnit = flagStartUnit
	}

	// Size the display to the terminal when possible
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.Display.Width = w
		cfg.Display.Height = h
	}

	store, err := options.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open options database: %v\n", err)
		// Continue without persistence
		store = nil
	}

	// The TUI owns the terminal; keep engine logs out of it.
	logger := log.New(io.Discard)

	model, err := tui.NewEngine(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running engine: %v\n", runErr)
		os.Exit(1)
	}
}
