package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/display"
	"github.com/vovakirdan/tui-engine/internal/options"
)

var displayCmd = &cobra.Command{
	Use:   "display [toggle <property> | set <WxH>]",
	Short: "Inspect or change persisted display state",
	Long: `Without arguments, prints the display state the next session will
start with. With arguments, changes it:

  engine display                      # show state
  engine display toggle fullscreen    # flip a flag
  engine display toggle vsync
  engine display set 120x40           # change resolution

Toggleable properties: fullscreen, borderless, vsync, mouse.
Changes respect the config's fixed properties and resolution constraints.`,
	Args: cobra.MaximumNArgs(2),
	Run:  runDisplay,
}

func runDisplay(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := options.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening options database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	mgr, err := display.NewManager(display.NopSink{}, store, cfg.Display, log.New(io.Discard))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating display manager: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		if err := applyDisplayChange(mgr, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	printDisplayState(mgr)
}

func applyDisplayChange(mgr *display.Manager, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: engine display [toggle <property> | set <WxH>]")
	}

	switch args[0] {
	case "toggle":
		switch args[1] {
		case "fullscreen":
			return mgr.ToggleFullscreen()
		case "borderless":
			return mgr.ToggleBorderless()
		case "vsync":
			return mgr.ToggleVSync()
		case "mouse":
			return mgr.ToggleMouseVisibility()
		default:
			return fmt.Errorf("unknown property %q", args[1])
		}

	case "set":
		parts := strings.SplitN(args[1], "x", 2)
		if len(parts) != 2 {
			return fmt.Errorf("resolution must be WxH, e.g. 120x40")
		}
		w, errW := strconv.Atoi(parts[0])
		h, errH := strconv.Atoi(parts[1])
		if errW != nil || errH != nil {
			return fmt.Errorf("resolution must be WxH, e.g. 120x40")
		}
		return mgr.SetResolution(display.Resolution{Width: w, Height: h})

	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func printDisplayState(mgr *display.Manager) {
	state := mgr.State()
	fixed := mgr.Constraints().Fixed

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	mark := func(p display.Property) string {
		if fixed[p] {
			return " (fixed)"
		}
		return ""
	}

	fmt.Println("Display state:")
	fmt.Printf("  resolution     %s%s\n", state.Resolution, mark(display.PropertyResolution))
	fmt.Printf("  fullscreen     %s%s\n", onOff(state.Fullscreen), mark(display.PropertyFullscreen))
	fmt.Printf("  borderless     %s%s\n", onOff(state.Borderless), mark(display.PropertyBorderless))
	fmt.Printf("  vsync          %s%s\n", onOff(state.VSync), mark(display.PropertyVSync))
	fmt.Printf("  mouse visible  %s%s\n", onOff(state.MouseVisible), mark(display.PropertyMouseVisibility))
}
