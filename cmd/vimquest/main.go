// vimquest is a three-stage terminal tutorial that teaches the first Vim
// habits: hjkl movement, insert mode and saving with :wq.
//
// Usage:
//
//	vimquest                  - Play the tutorial (same as 'play')
//	vimquest play             - Play the tutorial
//	vimquest serve            - Start SSH server for remote play
//	vimquest list             - List the stages in order
//	vimquest next|prev|reset|complete --from <n>
//	                          - Apply one navigation step headlessly
//	vimquest replay <script>  - Run a scripted session headlessly
//
// Global flags:
//
//	--config <path>    - Path to a config YAML
//	--log-file <path>  - Write diagnostics to a file
//	--debug            - Log every transition
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vim-quest/internal/config"
	// Import levels to register them
	_ "github.com/vovakirdan/vim-quest/internal/levels"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vimquest",
	Short: "Vim Quest - learn Vim basics in your terminal",
	Long: `Vim Quest walks you through three short stages:

  1. Dungeon Movement  - move with h, j, k, l to the exit
  2. Insert Mode       - press i, type, and leave with Esc
  3. Command Line      - press : and save with :wq

Available commands:
  play     - Play the tutorial (default)
  serve    - Start SSH server for remote play
  list     - Show the stages
  next     - Print the stage after --from
  prev     - Print the stage before --from
  reset    - Print stage --from after a reset
  complete - Print the stage reached by completing --from
  replay   - Run a YAML key script and print the feed

Examples:
  vimquest
  vimquest serve --ssh :2222
  vimquest next --from 2
  vimquest replay ./walkthrough.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(navCommands()...)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadConfigOrDefault loads the configuration, falling back to the
// defaults with a warning. Used by commands that always exit 0.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger returns the diagnostics logger and a close function.
// Without --log-file the output goes to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, func()) {
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}
