package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in units",
	Long:  `Shows the units registered in the engine.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model, err := tui.NewEngine(cfg, nil, log.New(io.Discard))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	names := model.Units().List()
	if len(names) == 0 {
		fmt.Println("No units registered.")
		return
	}

	fmt.Println("Registered units:")
	fmt.Println()
	for _, name := range names {
		u, _ := model.Units().Get(name)
		kind := "one-shot"
		if u.Base().Reconstructable() {
			kind = "reconstructable"
		}
		fmt.Printf("  %-10s  %s\n", name, kind)
	}
	fmt.Println()
	fmt.Println("Run 'engine run --unit <name>' to start with a unit.")
}
