// Package preview renders generated levels as colored text for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
)

// Entity markers drawn over the tile characters
var enemyMarks = map[entity.Kind]byte{
	entity.KindGoomba:     'g',
	entity.KindKoopa:      'k',
	entity.KindRager:      'r',
	entity.KindSpinner:    's',
	entity.KindGhost:      'h',
	entity.KindSlime:      'l',
	entity.KindTeleporter: 't',
	entity.KindThief:      'x',
	entity.KindDodger:     'd',
	entity.KindShielder:   'S',
	entity.KindHealer:     '+',
}

const (
	markCoin      = 'o'
	markPowerUp   = '*'
	markFalling   = 'V'
	markTrap      = 'A'
	markPlatform  = '='
	markBoss      = 'W'
	markUnknown   = '?'
	emptyTileChar = '.'
)

// charStyles maps grid and marker characters to lipgloss styles
var charStyles = map[byte]lipgloss.Style{
	emptyTileChar: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	'#':           lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	'B':           lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	'|':           lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	'T':           lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	'^':           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	'v':           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	'F':           lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	'D':           lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	markCoin:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	markPowerUp:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	markFalling:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	markTrap:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	markPlatform:  lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	markBoss:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

var (
	enemyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Lines returns the level as rows of characters with entities marked over the tiles
func Lines(bp *system.Blueprint) []string {
	rows := system.FormatGrid(bp.Grid)
	cells := make([][]byte, len(rows))
	for r, row := range rows {
		cells[r] = []byte(row)
	}

	ts := float64(bp.Grid.TileSize)
	mark := func(x, y float64, ch byte) {
		col, row := int(x/ts), int(y/ts)
		if row < 0 || row >= len(cells) || col < 0 || col >= len(cells[row]) {
			return
		}
		cells[row][col] = ch
	}

	for _, c := range bp.Coins {
		mark(c.X, c.Y, markCoin)
	}
	for _, p := range bp.PowerUps {
		mark(p.X, p.Y, markPowerUp)
	}
	for _, h := range bp.Hazards {
		ch := byte(markFalling)
		if h.Kind == entity.HazardSpikeTrap {
			ch = markTrap
		}
		mark(h.X, h.Y, ch)
	}
	for _, p := range bp.Platforms {
		mark(p.X, p.Y, markPlatform)
		mark(p.X+ts, p.Y, markPlatform)
	}
	for _, e := range bp.Enemies {
		ch, ok := enemyMarks[e.Kind]
		if !ok {
			ch = markUnknown
		}
		mark(e.X, e.Y, ch)
	}
	if bp.Boss != nil {
		mark(bp.Boss.X, bp.Boss.Y, markBoss)
	}

	out := make([]string, len(cells))
	for r, row := range cells {
		out[r] = string(row)
	}
	return out
}

// Summary returns a one-line description of the level contents
func Summary(bp *system.Blueprint) string {
	s := fmt.Sprintf("%d cols, %d coins, %d enemies, %d power-ups, %d hazards, %d platforms",
		bp.Grid.Cols, len(bp.Coins), len(bp.Enemies), len(bp.PowerUps), len(bp.Hazards), len(bp.Platforms))
	if bp.Boss != nil {
		s += fmt.Sprintf(", boss (%d hp)", bp.Boss.Health)
	}
	return s
}

// Render returns the styled preview of a level: a header, a summary and the marked grid.
// width limits the number of columns shown; zero shows the whole level.
func Render(bp *system.Blueprint, width int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(bp.Name))
	sb.WriteRune('\n')
	sb.WriteString(statStyle.Render(Summary(bp)))

	for _, line := range Lines(bp) {
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		sb.WriteRune('\n')
		sb.WriteString(renderLine(line))
	}
	return sb.String()
}

// renderLine styles runs of identical characters together
func renderLine(line string) string {
	var sb strings.Builder
	for i := 0; i < len(line); {
		j := i
		for j < len(line) && line[j] == line[i] {
			j++
		}
		sb.WriteString(styleFor(line[i]).Render(line[i:j]))
		i = j
	}
	return sb.String()
}

func styleFor(ch byte) lipgloss.Style {
	if style, ok := charStyles[ch]; ok {
		return style
	}
	return enemyStyle
}
