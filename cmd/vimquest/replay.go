package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vim-quest/internal/controller"
	"github.com/vovakirdan/vim-quest/internal/levels"
	"github.com/vovakirdan/vim-quest/internal/platform/tui"
	"github.com/vovakirdan/vim-quest/internal/script"
)

var flagReplayAll bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a scripted session headlessly",
	Long: `Replay a YAML script of key presses against a fresh session and print
the final stage, the feed and the progress.

Script format:

  start: 0
  steps:
    - keys: llllllkkkk
    - action: complete
    - key: i
    - type: " Vim is powerful!"
    - key: Escape
    - action: complete
    - key: ":"
    - submit: wq

Examples:
  vimquest replay ./walkthrough.yaml
  vimquest replay ./walkthrough.yaml --all`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayAll, "all", false, "Print the whole feed instead of the configured tail")
}

func runReplay(_ *cobra.Command, args []string) {
	s, err := script.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := newLogger(io.Discard, "vimquest")
	defer closeLog()

	ctrl, err := controller.New(levels.Builtin(), controller.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	s.Run(ctrl)
	logger.Debug("replay finished", "steps", len(s.Steps), "progress", ctrl.Progress().String())

	entries := ctrl.Feed().Recent(cfg.UI.FeedLines)
	if flagReplayAll {
		entries = ctrl.Feed().Entries()
	}

	fmt.Print(tui.PlainFrame(ctrl.Frame()))
	fmt.Println()
	printFeed(os.Stdout, entries)
}
