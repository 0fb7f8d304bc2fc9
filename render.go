package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors [pieceKindCount]lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Classic Tetris",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: [pieceKindCount]lipgloss.Color{"51", "226", "93", "46", "196", "21", "208"},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: [pieceKindCount]lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: [pieceKindCount]lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: [pieceKindCount]lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

const cellWidth = 2

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor).Faint(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func textStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderMenu(title string, items []string, selected int, help string, theme Theme) string {
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render(title))
	b.WriteString("\n\n")
	for i, item := range items {
		if i == selected {
			b.WriteString(highlightStyle(theme).Render("> " + item))
		} else {
			b.WriteString(textStyle(theme).Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle(theme).Render(help))
	return b.String()
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("Terminal Tetris", menuItems, m.menuIndex, "Up/Down to move, Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	content := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	preview := renderPiecePreviewRow(theme)
	return center(m.width, m.height, lipgloss.JoinVertical(lipgloss.Left, content, "", preview))
}

func renderPiecePreviewRow(theme Theme) string {
	pieces := make([]string, 0, pieceKindCount)
	for kind := PieceKind(0); kind < pieceKindCount; kind++ {
		pieces = append(pieces, lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...)
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		switch i {
		case 0:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.Sound)))
		case 1:
			items = append(items, fmt.Sprintf("%s: %d%%", item, m.config.Volume))
		case 2:
			items = append(items, fmt.Sprintf("%s: %s", item, onOff(m.config.Shadow)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	board := renderBoard(m.game, theme, m.config.Shadow)
	info := renderInfo(m.game, theme, m.bannerText())
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", info)
	return center(m.width, m.height, content)
}

func renderBoard(g *Game, theme Theme, showShadow bool) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	ghostStyle := lipgloss.NewStyle().Foreground(theme.TextColor).Faint(true)

	visual := g.RenderGrid()
	ghost := make(map[Point]bool)
	if showShadow && g.State == StatePlaying {
		for _, block := range g.GhostPiece().Blocks() {
			if block.Y >= 0 && block.Y < boardHeight && block.X >= 0 && block.X < boardWidth {
				if visual[block.Y][block.X] == CellEmpty {
					ghost[block] = true
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", boardWidth*cellWidth) + "+"))
	b.WriteString("\n")
	for y := 0; y < boardHeight; y++ {
		b.WriteString(border.Render("|"))
		for x := 0; x < boardWidth; x++ {
			cell := visual[y][x]
			switch {
			case cell != CellEmpty:
				color := theme.PieceColors[cell.Kind()]
				b.WriteString(lipgloss.NewStyle().Background(color).Render(strings.Repeat(" ", cellWidth)))
			case ghost[Point{X: x, Y: y}]:
				b.WriteString(ghostStyle.Render(strings.Repeat(":", cellWidth)))
			default:
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", boardWidth*cellWidth) + "+"))
	return b.String()
}

func renderInfo(g *Game, theme Theme, banner string) string {
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render("Terminal Tetris"))
	b.WriteString("\n\n")
	b.WriteString(textStyle(theme).Render(fmt.Sprintf("Score %7d", g.Score)))
	b.WriteString("\n")
	b.WriteString(textStyle(theme).Render(fmt.Sprintf("High  %7d", g.HighScore)))
	b.WriteString("\n")
	b.WriteString(textStyle(theme).Render(fmt.Sprintf("Level %7d", g.Level)))
	b.WriteString("\n")
	b.WriteString(textStyle(theme).Render(fmt.Sprintf("Lines %7d", g.Lines)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle(theme).Render("Next"))
	b.WriteString("\n")
	for _, kind := range g.Preview {
		b.WriteString(renderMiniPiece(kind, theme))
		b.WriteString("\n")
	}
	if banner != "" {
		b.WriteString("\n")
		b.WriteString(highlightStyle(theme).Render(banner))
		b.WriteString("\n")
	}
	switch g.State {
	case StatePaused:
		b.WriteString("\n")
		b.WriteString(highlightStyle(theme).Render("PAUSED"))
		b.WriteString("\n")
	case StateGameOver:
		b.WriteString("\n")
		b.WriteString(highlightStyle(theme).Render("GAME OVER"))
		b.WriteString("\n")
		b.WriteString(helpStyle(theme).Render("R to restart"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle(theme).Render("Arrows/HJKL move  X/Z rotate"))
	b.WriteString("\n")
	b.WriteString(helpStyle(theme).Render("Space drop  P pause  Q menu"))
	return b.String()
}

// renderMiniPiece draws a kind in its spawn rotation on a 4x2 canvas, for the
// preview panel and theme screen.
func renderMiniPiece(kind PieceKind, theme Theme) string {
	var cells [2][4]bool
	for _, offset := range pieceRotations[kind][0] {
		if offset.Y < 2 && offset.X < 4 {
			cells[offset.Y][offset.X] = true
		}
	}
	style := lipgloss.NewStyle().Foreground(theme.PieceColors[kind])
	var rows []string
	for y := 0; y < 2; y++ {
		var row strings.Builder
		for x := 0; x < 4; x++ {
			if cells[y][x] {
				row.WriteString(style.Render(strings.Repeat("█", cellWidth)))
			} else {
				row.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
