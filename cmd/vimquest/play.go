package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vim-quest/internal/platform/tui"
)

var flagStart int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the tutorial",
	Long: `Start the full-screen tutorial.

Controls:
  h j k l    - Move (stage 1)
  i / Esc    - Enter / leave insert mode (stage 2)
  :          - Open the command line (stage 3)
  Tab        - Continue after a stage is complete
  Ctrl+N/P   - Next / previous stage
  Ctrl+R     - Reset the stage
  Ctrl+C     - Quit

Examples:
  vimquest play
  vimquest play --start 2
  vimquest play --log-file ./vimquest.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStart, "start", 0, "Index of the first stage")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs a terminal; try 'vimquest replay' for headless runs.")
		os.Exit(1)
	}

	cfg := loadConfig()
	// The TUI owns the terminal, so diagnostics only go to --log-file
	logger, closeLog := newLogger(io.Discard, "vimquest")
	defer closeLog()

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		logger.Debug("terminal size", "width", w, "height", h)
	}

	if err := tui.Run(tui.Options{UI: cfg.UI, Logger: logger, Start: flagStart}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running tutorial: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
