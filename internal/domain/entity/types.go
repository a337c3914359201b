package entity

// EntityID is a unique identifier for an entity within a level
type EntityID uint32

// TileKind represents the kind of a tile
type TileKind int

const (
	TileEmpty TileKind = iota
	TileGround
	TileBlock
	TilePipeBody
	TilePipeCap
	TileSpikeDown
	TileSpikeUp
	TileFlag
	TileBossDoor
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileGround:
		return "Ground"
	case TileBlock:
		return "Block"
	case TilePipeBody:
		return "PipeBody"
	case TilePipeCap:
		return "PipeCap"
	case TileSpikeDown:
		return "SpikeDown"
	case TileSpikeUp:
		return "SpikeUp"
	case TileFlag:
		return "Flag"
	case TileBossDoor:
		return "BossDoor"
	default:
		return "Unknown"
	}
}

// Solid reports whether the tile blocks movement
func (k TileKind) Solid() bool {
	switch k {
	case TileGround, TileBlock, TilePipeBody, TilePipeCap:
		return true
	}
	return false
}

// Hazard reports whether touching the tile kills the player
func (k TileKind) Hazard() bool {
	return k == TileSpikeDown || k == TileSpikeUp
}

// Tile is a non-empty grid cell together with its world rectangle
type Tile struct {
	Col, Row int
	Kind     TileKind
	Rect     Rect
}

// Grid is the static terrain of a level.
// Cells are indexed [row][col] and are only written by the level generator.
type Grid struct {
	Cols     int
	Rows     int
	TileSize int
	cells    [][]TileKind
}

// NewGrid creates an empty grid
func NewGrid(cols, rows, tileSize int) *Grid {
	cells := make([][]TileKind, rows)
	for r := range cells {
		cells[r] = make([]TileKind, cols)
	}
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		cells:    cells,
	}
}

// GridFromMatrix rebuilds a grid from a tile-kind matrix.
// The matrix is copied; rows shorter than the first row are padded with empty cells.
func GridFromMatrix(matrix [][]TileKind, tileSize int) *Grid {
	rows := len(matrix)
	cols := 0
	if rows > 0 {
		cols = len(matrix[0])
	}
	g := NewGrid(cols, rows, tileSize)
	for r, row := range matrix {
		copy(g.cells[r], row)
	}
	return g
}

// InBounds reports whether (col, row) is inside the grid
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// At returns the tile kind at the given cell. Out-of-range cells are empty.
func (g *Grid) At(col, row int) TileKind {
	if !g.InBounds(col, row) {
		return TileEmpty
	}
	return g.cells[row][col]
}

// Set writes a tile kind. Out-of-range writes are ignored.
func (g *Grid) Set(col, row int, kind TileKind) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[row][col] = kind
}

// TileRect returns the world rectangle of a cell
func (g *Grid) TileRect(col, row int) Rect {
	ts := float64(g.TileSize)
	return Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
}

// PixelWidth returns the width of the level in pixels
func (g *Grid) PixelWidth() float64 {
	return float64(g.Cols * g.TileSize)
}

// PixelHeight returns the height of the level in pixels
func (g *Grid) PixelHeight() float64 {
	return float64(g.Rows * g.TileSize)
}

// Matrix returns a copy of the tile-kind matrix
func (g *Grid) Matrix() [][]TileKind {
	out := make([][]TileKind, g.Rows)
	for r := range g.cells {
		out[r] = make([]TileKind, g.Cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Tiles returns every non-empty tile in row-major order
func (g *Grid) Tiles() []Tile {
	var tiles []Tile
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if k := g.cells[r][c]; k != TileEmpty {
				tiles = append(tiles, Tile{Col: c, Row: r, Kind: k, Rect: g.TileRect(c, r)})
			}
		}
	}
	return tiles
}

// VisibleTiles returns the non-empty tiles whose columns fall inside the camera window
func (g *Grid) VisibleTiles(camX float64, screenW int) []Tile {
	ts := float64(g.TileSize)
	startCol := int(camX/ts) - 1
	endCol := int((camX+float64(screenW))/ts) + 1

	var tiles []Tile
	for r := 0; r < g.Rows; r++ {
		for c := startCol; c <= endCol; c++ {
			k := g.At(c, r)
			if k == TileEmpty {
				continue
			}
			rect := g.TileRect(c, r)
			if rect.Right() < camX || rect.X > camX+float64(screenW) {
				continue
			}
			tiles = append(tiles, Tile{Col: c, Row: r, Kind: k, Rect: rect})
		}
	}
	return tiles
}

// cellRange returns the inclusive cell range a rectangle covers, widened by one cell
func (g *Grid) cellRange(r Rect) (c0, r0, c1, r1 int) {
	ts := float64(g.TileSize)
	c0 = floorDiv(r.X, ts) - 1
	r0 = floorDiv(r.Y, ts) - 1
	c1 = floorDiv(r.Right(), ts) + 1
	r1 = floorDiv(r.Bottom(), ts) + 1
	return c0, r0, c1, r1
}

// SolidsNear returns the rectangles of solid tiles around r, in row-major order.
// The order matches a scan of the full tile list, so iterative resolution is unchanged.
func (g *Grid) SolidsNear(r Rect) []Rect {
	c0, r0, c1, r1 := g.cellRange(r)
	var out []Rect
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if g.At(col, row).Solid() {
				out = append(out, g.TileRect(col, row))
			}
		}
	}
	return out
}

// HazardsNear returns the hazard tiles around r, in row-major order
func (g *Grid) HazardsNear(r Rect) []Tile {
	c0, r0, c1, r1 := g.cellRange(r)
	var out []Tile
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if k := g.At(col, row); k.Hazard() {
				out = append(out, Tile{Col: col, Row: row, Kind: k, Rect: g.TileRect(col, row)})
			}
		}
	}
	return out
}

func floorDiv(v, d float64) int {
	q := int(v / d)
	if v < 0 && float64(q)*d != v {
		q--
	}
	return q
}
