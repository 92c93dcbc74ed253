package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vim-quest/internal/config"
	"github.com/vovakirdan/vim-quest/internal/controller"
	"github.com/vovakirdan/vim-quest/internal/core"
)

// Styles holds the lipgloss styles derived from the theme.
type Styles struct {
	Title     lipgloss.Style
	Genre     lipgloss.Style
	Objective lipgloss.Style
	Tile      lipgloss.Style
	Player    lipgloss.Style
	Exit      lipgloss.Style
	Path      lipgloss.Style
	Buffer    lipgloss.Style
	Normal    lipgloss.Style
	Insert    lipgloss.Style
	Complete  lipgloss.Style
	Feed      lipgloss.Style
	FeedNew   lipgloss.Style
}

// NewStyles builds styles for the given UI configuration.
func NewStyles(ui config.UIConfig) Styles {
	th := ui.Theme
	tile := lipgloss.NewStyle().
		Width(ui.TileWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(th.Tile))

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0"))

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Title)),
		Genre:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(th.Genre)),
		Objective: lipgloss.NewStyle().MarginBottom(1),
		Tile:      tile,
		Player:    tile.Bold(true).Foreground(lipgloss.Color(th.Player)),
		Exit:      tile.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color(th.Exit)),
		Path:      tile.Background(lipgloss.Color(th.Path)),
		Buffer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Normal:   badge.Background(lipgloss.Color(th.Normal)),
		Insert:   badge.Background(lipgloss.Color(th.Insert)),
		Complete: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Complete)),
		Feed:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FeedNew:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// renderHeader draws title, genre and objective.
func (s Styles) renderHeader(f controller.Frame) string {
	head := fmt.Sprintf("%s  %s", s.Title.Render(f.Title), s.Genre.Render(f.Genre))
	return lipgloss.JoinVertical(lipgloss.Left, head, s.Objective.Render(f.Objective))
}

// renderGrid draws the dungeon tiles.
func (s Styles) renderGrid(g core.GridView) string {
	path := make(map[core.Position]bool, len(g.Path))
	for _, p := range g.Path {
		path[p] = true
	}

	rows := make([]string, 0, g.Height)
	for y := range g.Height {
		cells := make([]string, 0, g.Width)
		for x := range g.Width {
			p := core.Pos(x, y)
			switch {
			case p == g.Player:
				cells = append(cells, s.Player.Render("@"))
			case p == g.Exit:
				cells = append(cells, s.Exit.Render("EXIT"))
			case path[p]:
				cells = append(cells, s.Path.Render(""))
			default:
				cells = append(cells, s.Tile.Render(""))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderBuffer draws the editor buffer with its mode badge.
func (s Styles) renderBuffer(b core.BufferView) string {
	badge := s.Normal.Render(b.Mode.Badge())
	if b.Mode == core.ModeInsert {
		badge = s.Insert.Render(b.Mode.Badge())
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Buffer.Render(b.Display()), badge)
}

// renderFeed draws the newest entries, most recent on top.
func (s Styles) renderFeed(entries []string) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		if i == 0 {
			lines[i] = s.FeedNew.Render("> " + e)
			continue
		}
		lines[i] = s.Feed.Render("  " + e)
	}
	return strings.Join(lines, "\n")
}

// PlainFrame renders a frame without styling, for headless output.
func PlainFrame(f controller.Frame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d] %s (%s)\n", f.Index+1, f.Title, f.Genre)
	fmt.Fprintf(&sb, "%s\n\n", f.Objective)

	if f.Grid != nil {
		sb.WriteString(PlainGrid(*f.Grid))
		sb.WriteString("\n")
	}
	if f.Buffer != nil {
		fmt.Fprintf(&sb, "%s\n-- %s --\n", f.Buffer.Display(), f.Buffer.Mode.Badge())
	}
	if f.CommandLineVisible {
		sb.WriteString(":\n")
	}
	if f.CompleteVisible {
		sb.WriteString("Stage complete!\n")
	}
	fmt.Fprintf(&sb, "Progress: %s\n", f.Progress)
	return sb.String()
}

// PlainGrid draws the grid with one character per tile:
// '@' player, 'E' exit, '=' path, '.' floor.
func PlainGrid(g core.GridView) string {
	path := make(map[core.Position]bool, len(g.Path))
	for _, p := range g.Path {
		path[p] = true
	}

	var sb strings.Builder
	for y := range g.Height {
		for x := range g.Width {
			p := core.Pos(x, y)
			switch {
			case p == g.Player:
				sb.WriteRune('@')
			case p == g.Exit:
				sb.WriteRune('E')
			case path[p]:
				sb.WriteRune('=')
			default:
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
