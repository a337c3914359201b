package system

import (
	"fmt"
	"strings"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
)

// Tile characters used by the text form of a grid
var tileChars = map[entity.TileKind]byte{
	entity.TileEmpty:     '.',
	entity.TileGround:    '#',
	entity.TileBlock:     'B',
	entity.TilePipeBody:  '|',
	entity.TilePipeCap:   'T',
	entity.TileSpikeDown: 'v',
	entity.TileSpikeUp:   '^',
	entity.TileFlag:      'F',
	entity.TileBossDoor:  'D',
}

var charTiles = func() map[byte]entity.TileKind {
	m := make(map[byte]entity.TileKind, len(tileChars))
	for k, c := range tileChars {
		m[c] = k
	}
	return m
}()

// TileChar returns the text character for a tile kind
func TileChar(k entity.TileKind) byte {
	if c, ok := tileChars[k]; ok {
		return c
	}
	return '?'
}

// ParseGrid converts rows of tile characters into a Grid.
// Short rows are padded with empty cells; ' ' reads as empty.
func ParseGrid(rows []string, tileSize int) (*entity.Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	grid := entity.NewGrid(cols, len(rows), tileSize)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			ch := row[c]
			if ch == ' ' {
				continue
			}
			kind, ok := charTiles[ch]
			if !ok {
				return nil, fmt.Errorf("parse grid: unknown tile %q at col %d row %d", ch, c, r)
			}
			grid.Set(c, r, kind)
		}
	}
	return grid, nil
}

// FormatGrid renders a grid as rows of tile characters
func FormatGrid(grid *entity.Grid) []string {
	rows := make([]string, grid.Rows)
	var sb strings.Builder
	for r := 0; r < grid.Rows; r++ {
		sb.Reset()
		for c := 0; c < grid.Cols; c++ {
			sb.WriteByte(TileChar(grid.At(c, r)))
		}
		rows[r] = sb.String()
	}
	return rows
}
