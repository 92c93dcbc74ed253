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

var flagFrom int

// navCommands builds one headless subcommand per navigation action.
func navCommands() []*cobra.Command {
	specs := []struct {
		action script.Action
		short  string
	}{
		{script.ActionNext, "Show the stage after --from (wraps around)"},
		{script.ActionPrev, "Show the stage before --from (wraps around)"},
		{script.ActionReset, "Show stage --from after resetting it"},
		{script.ActionComplete, "Show the stage reached by completing --from"},
	}

	cmds := make([]*cobra.Command, 0, len(specs))
	for _, s := range specs {
		action := s.action
		cmd := &cobra.Command{
			Use:   string(action),
			Short: s.short,
			Args:  cobra.NoArgs,
			Run: func(_ *cobra.Command, _ []string) {
				runNav(os.Stdout, action)
			},
		}
		cmd.Flags().IntVar(&flagFrom, "from", 0, "Index of the starting stage")
		cmds = append(cmds, cmd)
	}
	return cmds
}

func runNav(w io.Writer, action script.Action) {
	cfg := loadConfigOrDefault()
	logger, closeLog := newLogger(io.Discard, "vimquest")
	defer closeLog()

	ctrl, err := controller.New(levels.Builtin(), controller.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	ctrl.Setup(flagFrom)
	action.Apply(ctrl)

	fmt.Fprint(w, tui.PlainFrame(ctrl.Frame()))
	fmt.Fprintln(w)
	printFeed(w, ctrl.Feed().Recent(cfg.UI.FeedLines))
}

func printFeed(w io.Writer, entries []string) {
	for i, e := range entries {
		prefix := "  "
		if i == 0 {
			prefix = "> "
		}
		fmt.Fprintln(w, prefix+e)
	}
}
