package system

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Sky colors cycle per level
var skyColors = []color.RGBA{
	{R: 107, G: 140, B: 255, A: 255},
	{R: 100, G: 130, B: 230, A: 255},
	{R: 80, G: 100, B: 200, A: 255},
}

// Boss arenas use a darker sky
var bossSky = color.RGBA{R: 40, G: 30, B: 60, A: 255}

const platformSpeed = 1.0

// CellWrite records one tile written during generation
type CellWrite struct {
	Col, Row int
	Kind     entity.TileKind
}

// EnemySpawn is a planned enemy with its top-left corner in pixels
type EnemySpawn struct {
	Kind entity.Kind
	X, Y float64
}

// PowerUpSpawn is a planned power-up
type PowerUpSpawn struct {
	Kind entity.PowerUpKind
	X, Y float64
}

// HazardSpawn is a planned falling spike or spike trap
type HazardSpawn struct {
	Kind  entity.HazardKind
	X, Y  float64
	Phase int
}

// PlatformSpawn is a planned moving platform
type PlatformSpawn struct {
	X, Y     float64
	Axis     entity.PlatformAxis
	Min, Max float64
	Speed    float64
}

// BossSpawn is the planned boss of a boss level
type BossSpawn struct {
	X, Y       float64
	Health     int
	MinX, MaxX float64
}

// Blueprint is the generated description of a level
type Blueprint struct {
	Number int
	Name   string
	Sky    color.RGBA
	IsBoss bool

	Grid  *entity.Grid
	FlagX float64 // exit x in pixels (non-boss levels)
	DoorX float64 // boss door x in pixels (boss levels)

	Coins     []entity.Rect
	Enemies   []EnemySpawn
	PowerUps  []PowerUpSpawn
	Hazards   []HazardSpawn
	Platforms []PlatformSpawn
	Boss      *BossSpawn

	// Writes lists every tile write in order
	Writes []CellWrite
}

// Generator builds levels from a seeded random source
type Generator struct {
	config *config.GameConfig
	rng    *rand.Rand
}

// NewGenerator creates a new level generator
func NewGenerator(cfg *config.GameConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: cfg,
		rng:    rng,
	}
}

// Width returns the column count of a level
func (g *Generator) Width(level int) int {
	return g.config.Generator.BaseWidth + g.config.Generator.WidthPerLevel*(level-1)
}

// IsBossLevel reports whether the level is a boss arena
func (g *Generator) IsBossLevel(level int) bool {
	every := g.config.Session.BossEvery
	return every > 0 && level%every == 0
}

// GenerateLevel generates a level using the configured width and boss cadence
func (g *Generator) GenerateLevel(level int) *Blueprint {
	return g.Generate(level, g.Width(level), g.IsBossLevel(level))
}

// genState is the scratch state of one generation pass
type genState struct {
	bp        *Blueprint
	cols      int
	ground    int
	limit     int // first column no feature may occupy
	pits      map[int]bool
	pipeCols  []int
	blockRuns [][2]int // (col, row) of each run's first cell
}

// Generate builds a level. Later steps read the grid back and never overwrite earlier tiles.
func (g *Generator) Generate(level, cols int, isBoss bool) *Blueprint {
	ts := g.config.Display.TileSize

	bp := &Blueprint{
		Number: level,
		IsBoss: isBoss,
		Grid:   entity.NewGrid(cols, g.config.Generator.Rows, ts),
	}
	if isBoss {
		bp.Name = fmt.Sprintf("Boss Lair %d", g.bossIndex(level))
		bp.Sky = bossSky
	} else {
		bp.Name = fmt.Sprintf("Level %d", level)
		bp.Sky = skyColors[(max(level, 1)-1)%len(skyColors)]
	}

	st := &genState{
		bp:     bp,
		cols:   cols,
		ground: g.config.Generator.GroundRow,
		limit:  cols - 3,
		pits:   make(map[int]bool),
	}
	doorCol := cols - 12
	if isBoss {
		st.limit = doorCol - 2
	}

	if !isBoss {
		g.planPits(st)
	}
	g.fillGround(st)
	g.placePipes(st, level)
	g.placeBlocks(st, level)
	g.placeSpikes(st, level)

	// Exit trigger
	if isBoss {
		g.place(st, doorCol, st.ground-1, entity.TileBossDoor)
		bp.DoorX = float64(doorCol * ts)
	} else {
		g.place(st, cols-3, st.ground-1, entity.TileFlag)
		bp.FlagX = float64((cols - 3) * ts)
	}

	g.placeCoins(st, level)
	g.placeEnemies(st, level)
	g.placePowerUps(st, level)
	if level >= 2 {
		g.placeHazards(st, level)
		g.placePlatforms(st, level)
	}
	if isBoss {
		g.placeBoss(st, level, doorCol)
	}
	return bp
}

func (g *Generator) bossIndex(level int) int {
	if g.config.Session.BossEvery <= 0 {
		return 1
	}
	return max(level/g.config.Session.BossEvery, 1)
}

// place writes kind into an empty cell and journals it
func (g *Generator) place(st *genState, col, row int, kind entity.TileKind) bool {
	grid := st.bp.Grid
	if !grid.InBounds(col, row) || grid.At(col, row) != entity.TileEmpty {
		return false
	}
	grid.Set(col, row, kind)
	st.bp.Writes = append(st.bp.Writes, CellWrite{Col: col, Row: row, Kind: kind})
	return true
}

// randInt returns a uniform int in [lo, hi]
func (g *Generator) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) planPits(st *genState) {
	segments := max(g.config.Generator.PitSegments, 1)
	segW := (st.cols - 10) / segments
	for seg := 0; seg < segments; seg++ {
		start := 3 + seg*segW
		col, width := 0, 1
		if seg == 0 {
			col = start + g.randInt(3, 6)
		} else {
			col = start + g.randInt(2, segW-2)
			width = g.randInt(1, 2)
		}
		for p := 0; p < width; p++ {
			if col+p < st.cols-3 {
				st.pits[col+p] = true
			}
		}
	}
}

func (g *Generator) fillGround(st *genState) {
	for col := 0; col < st.cols; col++ {
		if st.pits[col] {
			continue
		}
		g.place(st, col, st.ground, entity.TileGround)
		g.place(st, col, st.ground+1, entity.TileGround)
	}
}

func (g *Generator) placePipes(st *genState, level int) {
	grid := st.bp.Grid
	for i := 0; i < 4+level; i++ {
		col := g.randInt(8, st.cols-8)
		height := g.randInt(1, 2)
		if level > 1 {
			height = g.randInt(2, 3)
		}
		if level >= 2 && g.rng.Float64() < g.config.Generator.TallPipeChance {
			height = 4
		}

		if col >= st.limit || grid.At(col, st.ground) != entity.TileGround {
			continue
		}
		free := true
		for h := 1; h <= height; h++ {
			if grid.At(col, st.ground-h) != entity.TileEmpty {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		for h := 1; h < height; h++ {
			g.place(st, col, st.ground-h, entity.TilePipeBody)
		}
		g.place(st, col, st.ground-height, entity.TilePipeCap)
		st.pipeCols = append(st.pipeCols, col)
	}
}

func (g *Generator) placeBlocks(st *genState, level int) {
	for i := 0; i < 6+2*level; i++ {
		col := g.randInt(4, st.cols-6)
		width := g.randInt(2, 3)
		row := g.randInt(9, 12)

		placed := false
		for w := 0; w < width; w++ {
			if col+w >= st.limit {
				break
			}
			if g.place(st, col+w, row, entity.TileBlock) && !placed {
				placed = true
				st.blockRuns = append(st.blockRuns, [2]int{col + w, row})
			}
		}
	}
}

func (g *Generator) placeSpikes(st *genState, level int) {
	grid := st.bp.Grid
	for col := 4; col < st.cols-4; col++ {
		if grid.At(col, st.ground) != entity.TileGround || g.rng.Float64() >= g.config.Generator.SpikeChance {
			continue
		}
		if g.nearPipe(st, col) || col <= 5 || col >= st.cols-5 || col >= st.limit {
			continue
		}
		g.place(st, col, st.ground-1, entity.TileSpikeUp)
	}

	if level < 2 {
		return
	}
	for _, run := range st.blockRuns {
		if g.rng.Float64() < g.config.Generator.CeilingSpikeOdds {
			g.place(st, run[0], run[1]+1, entity.TileSpikeDown)
		}
	}
}

func (g *Generator) nearPipe(st *genState, col int) bool {
	for _, pc := range st.pipeCols {
		if abs(col-pc) <= 1 {
			return true
		}
	}
	return false
}

// validColumn reports whether an entity can stand on col: ground below, no spike, no pipe nearby
func (g *Generator) validColumn(st *genState, col int) bool {
	grid := st.bp.Grid
	return grid.At(col, st.ground) == entity.TileGround &&
		grid.At(col, st.ground-1) == entity.TileEmpty &&
		!g.nearPipe(st, col)
}

// sampleColumn draws a column in [lo, hi] with rejection sampling and an unchecked fallback
func (g *Generator) sampleColumn(st *genState, lo, hi int) int {
	for attempt := 0; attempt < g.config.Generator.PlacementAttempts; attempt++ {
		col := g.randInt(lo, hi)
		if g.validColumn(st, col) {
			return col
		}
	}
	return g.randInt(8, max(st.limit-5, 8))
}

func (g *Generator) placeCoins(st *genState, level int) {
	grid := st.bp.Grid
	ts := float64(grid.TileSize)
	pad := (ts - entity.CoinSize) / 2

	for i := 0; i < 10+2*level; i++ {
		var col, row int
		for attempt := 0; attempt < g.config.Generator.PlacementAttempts; attempt++ {
			col = g.randInt(2, st.limit-1)
			if grid.At(col, st.ground-1).Solid() {
				row = st.ground - 2
			} else {
				row = g.randInt(11, 13)
			}
			if grid.At(col, row) == entity.TileEmpty {
				break
			}
		}
		st.bp.Coins = append(st.bp.Coins, entity.Rect{
			X: float64(col)*ts + pad,
			Y: float64(row)*ts + pad,
			W: entity.CoinSize,
			H: entity.CoinSize,
		})
	}
}

// Roster returns the enemy kinds a level draws from
func Roster(level int) []entity.Kind {
	switch {
	case level <= 1:
		return []entity.Kind{entity.KindGoomba}
	case level == 2:
		return []entity.Kind{entity.KindGoomba, entity.KindKoopa, entity.KindSlime}
	case level == 3:
		return []entity.Kind{entity.KindGoomba, entity.KindKoopa, entity.KindRager, entity.KindGhost}
	default:
		return []entity.Kind{
			entity.KindGoomba, entity.KindKoopa, entity.KindRager, entity.KindGhost,
			entity.KindSpinner, entity.KindTeleporter, entity.KindThief, entity.KindDodger,
		}
	}
}

func (g *Generator) placeEnemies(st *genState, level int) {
	roster := Roster(level)
	for i := 0; i < 6+2*level; i++ {
		kind := roster[g.rng.Intn(len(roster))]
		col := g.sampleColumn(st, 5, st.limit-2)
		st.bp.Enemies = append(st.bp.Enemies, g.enemyAt(st, kind, col))
	}

	// Support units from level 4
	for i := 0; level >= 4 && i < level/2; i++ {
		kind := entity.KindShielder
		if i%2 == 1 {
			kind = entity.KindHealer
		}
		col := g.sampleColumn(st, 10, st.limit-2)
		st.bp.Enemies = append(st.bp.Enemies, g.enemyAt(st, kind, col))
	}
}

// enemyAt positions an enemy over col: walkers stand on the ground, flyers hover above it
func (g *Generator) enemyAt(st *genState, kind entity.Kind, col int) EnemySpawn {
	ts := float64(st.bp.Grid.TileSize)
	w, h := entity.EnemySize(kind)
	x := float64(col)*ts + (ts-w)/2
	if kind.Flying() {
		return EnemySpawn{Kind: kind, X: x, Y: float64(g.randInt(7, 10)) * ts}
	}
	return EnemySpawn{Kind: kind, X: x, Y: float64(st.ground)*ts - h}
}

func (g *Generator) placePowerUps(st *genState, level int) {
	ts := float64(st.bp.Grid.TileSize)
	pad := (ts - entity.PowerUpSize) / 2
	for i := 0; i < 1+level/3; i++ {
		col := g.sampleColumn(st, 10, st.limit-2)
		kind := entity.PowerUpKind(g.rng.Intn(3))
		st.bp.PowerUps = append(st.bp.PowerUps, PowerUpSpawn{
			Kind: kind,
			X:    float64(col)*ts + pad,
			Y:    float64(st.ground-3)*ts + pad,
		})
	}
}

func (g *Generator) placeHazards(st *genState, level int) {
	ts := float64(st.bp.Grid.TileSize)
	interval := max(g.config.Hazards.SpikeTrapInterval, 1)

	for i := 0; i < level-1; i++ {
		col := g.sampleColumn(st, 10, st.limit-2)
		st.bp.Hazards = append(st.bp.Hazards, HazardSpawn{
			Kind: entity.HazardFallingSpike,
			X:    float64(col)*ts + (ts-entity.FallingSpikeWidth)/2,
			Y:    float64(st.ground-8) * ts,
		})
	}
	for i := 0; i < level/2; i++ {
		col := g.sampleColumn(st, 10, st.limit-2)
		st.bp.Hazards = append(st.bp.Hazards, HazardSpawn{
			Kind:  entity.HazardSpikeTrap,
			X:     float64(col) * ts,
			Y:     float64(st.ground)*ts - entity.SpikeTrapHeight,
			Phase: g.rng.Intn(interval),
		})
	}
}

func (g *Generator) placePlatforms(st *genState, level int) {
	ts := float64(st.bp.Grid.TileSize)

	// Prefer spanning pits
	var pitCols []int
	for col := 0; col < st.cols; col++ {
		if st.pits[col] && !st.pits[col-1] {
			pitCols = append(pitCols, col)
		}
	}

	for i := 0; i < 1+level/2; i++ {
		var col int
		if i < len(pitCols) {
			col = pitCols[i]
		} else {
			col = g.randInt(10, max(st.limit-4, 10))
		}
		x := float64(col)*ts + ts/2 - entity.PlatformWidth/2

		if i%2 == 0 {
			y := float64(st.ground-2) * ts
			st.bp.Platforms = append(st.bp.Platforms, PlatformSpawn{
				X: x, Y: y, Axis: entity.AxisHorizontal,
				Min: x - 2*ts, Max: x + 2*ts, Speed: platformSpeed,
			})
			continue
		}
		y := float64(st.ground-5) * ts
		st.bp.Platforms = append(st.bp.Platforms, PlatformSpawn{
			X: x, Y: y, Axis: entity.AxisVertical,
			Min: y - 2*ts, Max: float64(st.ground-2) * ts, Speed: platformSpeed,
		})
	}
}

func (g *Generator) placeBoss(st *genState, level, doorCol int) {
	ts := float64(st.bp.Grid.TileSize)
	cfg := g.config.Boss

	minX := float64(doorCol)*ts + entity.BossSize
	maxX := float64(st.cols-2)*ts - entity.BossSize
	st.bp.Boss = &BossSpawn{
		X:      maxX,
		Y:      float64(st.ground)*ts - entity.BossSize,
		Health: cfg.Health + cfg.HealthPerBoss*(g.bossIndex(level)-1),
		MinX:   minX,
		MaxX:   maxX,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
