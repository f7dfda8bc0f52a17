package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"elastic-carousel/app"
	"elastic-carousel/config"
	"elastic-carousel/deck"
	"elastic-carousel/log"
	"elastic-carousel/ui/carousel"
	"elastic-carousel/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version      = "0.4.0"
	rtlFlag      bool
	autoPlayFlag bool
	speedFlag    int
	itemsFlag    int
	noTiltFlag   bool

	renderWidthFlag  int
	renderHeightFlag int
	renderCardFlag   int

	rootCmd = &cobra.Command{
		Use:   "elastic-carousel [deck]",
		Short: "elastic-carousel - Page through card decks in a responsive terminal carousel.",
		Long: "Open a deck of cards written in YAML, TOML or Markdown and page through it.\n" +
			"Without a deck a file browser is shown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}

			var deckPath string
			if len(args) == 1 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("failed to resolve deck path: %w", err)
				}
				deckPath = abs
			}
			return app.Run(ctx, deckPath, cfg)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render <deck>",
		Short: "Print one frame of a deck without starting the interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}

			d, err := deck.Load(args[0])
			if d == nil {
				return err
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}

			out := termenv.NewOutput(os.Stdout)
			lipgloss.SetColorProfile(out.Profile)

			width, height := terminalSize()
			if renderWidthFlag > 0 {
				width = renderWidthFlag
			}
			if renderHeightFlag > 0 {
				height = renderHeightFlag
			}
			fmt.Println(renderFrame(d, cfg, width, height, renderCardFlag-1))
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n", filepath.Join(configDir, config.StateFileName))
			fmt.Printf("Log: %s\n", log.FileName())

			return nil
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration and the remembered deck positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.Reset(); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Println("Configuration and state have been reset")
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of elastic-carousel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("elastic-carousel version %s\n", version)
		},
	}
)

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rtl") {
		cfg.RTL = rtlFlag
	}
	if flags.Changed("autoplay") {
		cfg.EnableAutoPlay = autoPlayFlag
	}
	if flags.Changed("speed") {
		if speedFlag <= 0 {
			return fmt.Errorf("invalid autoplay speed: %d (must be positive)", speedFlag)
		}
		cfg.AutoPlaySpeedMs = speedFlag
	}
	if flags.Changed("items") {
		if itemsFlag < 1 {
			return fmt.Errorf("invalid number of cards: %d (must be at least 1)", itemsFlag)
		}
		// A fixed count turns responsive mode off.
		cfg.Breakpoints = nil
		cfg.ItemsToShow = itemsFlag
		cfg.ItemsToScroll = min(max(cfg.ItemsToScroll, 1), itemsFlag)
	}
	if flags.Changed("no-tilt") {
		cfg.EnableTilt = !noTiltFlag
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// renderFrame lays d out at the given size with first as the first
// visible card and returns the carousel frame.
func renderFrame(d *deck.Deck, cfg *config.Config, width, height, first int) string {
	cc := cfg.CarouselConfig()
	if len(d.Breakpoints) > 0 && len(cc.Breakpoints) > 0 {
		cc.Breakpoints = append([]layout.Breakpoint(nil), d.Breakpoints...)
	}
	cc.InitialFirstItem = max(first, 0)
	// A single frame never moves.
	cc.EnableAutoPlay = false

	r := deck.NewRenderer(cfg.MarkdownStyle)
	c := carousel.New(cc, deck.Items(d, r))
	c.SetSize(width, height)
	c.Init()
	defer c.Teardown()
	return c.View()
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, renderCmd} {
		c.Flags().BoolVar(&rtlFlag, "rtl", false, "Lay the carousel out right to left")
		c.Flags().BoolVar(&autoPlayFlag, "autoplay", false, "Advance through the deck automatically")
		c.Flags().IntVar(&speedFlag, "speed", 0, "Autoplay delay between steps in milliseconds")
		c.Flags().IntVarP(&itemsFlag, "items", "n", 0, "Show a fixed number of cards instead of picking by width")
		c.Flags().BoolVar(&noTiltFlag, "no-tilt", false, "Disable the tilt animation at the ends of the deck")
	}
	renderCmd.Flags().IntVar(&renderWidthFlag, "width", 0, "Frame width (defaults to the terminal width)")
	renderCmd.Flags().IntVar(&renderHeightFlag, "height", 0, "Frame height (defaults to the terminal height)")
	renderCmd.Flags().IntVar(&renderCardFlag, "card", 1, "First visible card, counting from 1")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
