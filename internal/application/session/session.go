// Package session runs a play session: the level sequence, the frame loop and the game state machine.
package session

import (
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/state"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Session owns everything that changes during play.
// It is driven one frame at a time by Update and is not safe for concurrent use.
type Session struct {
	config *config.GameConfig
	logger *log.Logger
	seed   int64
	rng    *rand.Rand

	physics     *system.PhysicsSystem
	controller  *system.PlayerController
	behavior    *system.BehaviorSystem
	interaction *system.InteractionSystem
	store       *Store
	bus         system.EventBus

	state  state.GameState
	resume state.GameState // state to return to when unpausing

	levelNum int
	level    *Level
	player   *entity.Player
	combo    system.Combo
	chat     system.Chat
	frame    int

	camX           float64
	shake          system.Shake
	shakeX, shakeY float64
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for state transitions and events
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSink subscribes an event sink from the first frame
func WithSink(sink system.EventSink) Option {
	return func(s *Session) {
		s.bus.Subscribe(sink)
	}
}

// New creates a session at level 1. All randomness is drawn from seed.
func New(cfg *config.GameConfig, seed int64, opts ...Option) *Session {
	rng := rand.New(rand.NewSource(seed))
	physics := system.NewPhysicsSystem(&cfg.Physics)

	s := &Session{
		config:      cfg,
		logger:      log.Default(),
		seed:        seed,
		rng:         rng,
		physics:     physics,
		controller:  system.NewPlayerController(&cfg.Player, physics),
		behavior:    system.NewBehaviorSystem(cfg, physics),
		interaction: system.NewInteractionSystem(cfg),
		store:       NewStore(system.NewGenerator(cfg, rng)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.bus.OnSinkFailure = func(_ system.EventSink, recovered any) {
		s.logger.Warn("event sink removed", "panic", recovered)
	}

	s.start()
	return s
}

// start puts a new player on level 1
func (s *Session) start() {
	pc := &s.config.Player
	s.player = entity.NewPlayer(pc.SpawnX, pc.SpawnY, pc.StartLives)
	s.combo.Reset()
	s.shake = system.Shake{}
	s.shakeX, s.shakeY = 0, 0
	s.loadLevel(1)
	s.setState(state.StatePlaying)
}

// Subscribe adds an event sink
func (s *Session) Subscribe(sink system.EventSink) {
	s.bus.Subscribe(sink)
}

// Update advances the session by one frame of input
func (s *Session) Update(in system.Input) {
	// Text entry swallows gameplay input while open
	if s.chat.Active || in.ChatToggle {
		if line, ok := s.chat.Handle(in); ok {
			s.emit(system.Event{Type: system.EventChat, Frame: s.frame, Text: line})
		}
		in = system.Input{}
	}

	switch s.state {
	case state.StatePaused:
		if in.Pause {
			s.setState(s.resume)
		}
		return
	case state.StateGameOver, state.StateWin:
		if in.Restart {
			s.Restart()
		}
		return
	}

	if in.Pause {
		s.resume = s.state
		s.setState(state.StatePaused)
		return
	}
	s.step(in)
}

// Restart drops every generated level and starts over from level 1
func (s *Session) Restart() {
	s.logger.Info("restart", "score", s.player.Score, "level", s.levelNum)
	s.store.Reset()
	s.chat.Reset()
	s.start()
}

// step runs one simulated frame.
// Order: player, platforms, enemies and hazards, projectiles and particles,
// interactions, transitions, then timers, camera and shake.
func (s *Session) step(in system.Input) {
	s.frame++
	lvl := s.level
	p := s.player

	res := s.controller.Update(p, in, lvl.Grid, lvl.PlatformRects())
	if res.Jumped || res.DoubleJumped {
		s.emit(system.Event{Type: system.EventJump, Frame: s.frame, X: p.X, Y: p.Y})
	}
	if res.Shot != nil {
		lvl.Projectiles = append(lvl.Projectiles, res.Shot)
		s.emit(system.Event{Type: system.EventShoot, Frame: s.frame, X: res.Shot.X, Y: res.Shot.Y})
	}

	for i, m := range lvl.Platforms {
		m.Update()
		if i == res.Platform {
			p.X += m.DX
			p.Y += m.DY
		}
	}

	bossMode := s.state == state.StateBossEncounter
	ctx := &system.BehaviorContext{
		Grid:        lvl.Grid,
		Platforms:   lvl.PlatformRects(),
		Player:      p.Rect(),
		Projectiles: lvl.Projectiles,
		Enemies:     lvl.Enemies,
		Coins:       lvl.Coins,
		LevelWidth:  lvl.Width(),
		Rng:         s.rng,
	}
	for _, e := range lvl.Enemies {
		s.behavior.Update(e, ctx)
	}
	if lvl.Boss != nil && bossMode {
		s.behavior.UpdateBoss(lvl.Boss, ctx)
	}
	for _, h := range lvl.Hazards {
		s.behavior.UpdateHazard(h, ctx)
	}
	for _, proj := range lvl.Projectiles {
		proj.Update(lvl.Width())
	}
	for _, pt := range lvl.Particles {
		pt.Update(s.config.Feedback.ParticleGravity)
	}
	for _, c := range lvl.Coins {
		c.AnimTimer++
	}
	s.applyIntents(lvl, ctx.Intents)

	out := s.interaction.Resolve(&system.Frame{
		Number:      s.frame,
		Player:      p,
		Grid:        lvl.Grid,
		Coins:       lvl.Coins,
		PowerUps:    lvl.PowerUps,
		Enemies:     lvl.Enemies,
		Hazards:     lvl.Hazards,
		Projectiles: lvl.Projectiles,
		Boss:        lvl.Boss,
		IsBoss:      lvl.IsBoss,
		BossMode:    bossMode,
		FlagX:       lvl.FlagX,
		DoorX:       lvl.DoorX,
		Combo:       &s.combo,
	})
	for _, e := range out.Events {
		s.emit(e)
	}
	for _, b := range out.Bursts {
		lvl.AddBurst(b.X, b.Y, b.Tone, &s.config.Feedback, s.rng)
	}
	if out.Shake != nil {
		s.startShake(*out.Shake)
	}
	lvl.Sweep()

	switch {
	case out.Died:
		s.handleDeath()
	case out.ReachedFlag, out.BossDefeated:
		s.advance()
	case out.ReachedDoor:
		s.setState(state.StateBossEncounter)
	}

	p.TickTimers()
	s.combo.Tick()
	s.updateCamera()
	s.updateShake()
}

func (s *Session) applyIntents(lvl *Level, intents []system.Intent) {
	for _, it := range intents {
		switch it := it.(type) {
		case system.SpawnIntent:
			e := s.behavior.SpawnEnemy(lvl.NewID(), it.Kind, it.X, it.Y)
			e.Dir = it.Dir
			lvl.Enemies = append(lvl.Enemies, e)
		case system.StealIntent:
			s.emit(system.Event{Type: system.EventSteal, Frame: s.frame, X: it.X, Y: it.Y, Value: int(it.Coin)})
		case system.HealIntent:
			s.emit(system.Event{Type: system.EventHealPulse, Frame: s.frame, X: it.X, Y: it.Y, Value: int(it.Target)})
		}
	}
}

func (s *Session) handleDeath() {
	if s.interaction.ApplyDeath(s.player, &s.combo) {
		s.setState(state.StateGameOver)
		s.emit(system.Event{Type: system.EventGameOver, Frame: s.frame, Value: s.player.Score})
		return
	}
	s.camX = 0
}

// advance moves to the next level, or wins after the last one
func (s *Session) advance() {
	if s.levelNum >= s.config.Session.MaxLevels {
		s.setState(state.StateWin)
		s.emit(system.Event{Type: system.EventWin, Frame: s.frame, Value: s.player.Score})
		return
	}
	s.loadLevel(s.levelNum + 1)
	s.player.Respawn(s.config.Player.SpawnX, s.config.Player.SpawnY)
	s.setState(state.StatePlaying)
}

func (s *Session) loadLevel(n int) {
	s.levelNum = n
	s.level = NewLevel(s.store.Get(n), s.behavior, s.config)
	s.camX = 0
	s.logger.Info("level", "number", n, "name", s.level.Name, "boss", s.level.IsBoss,
		"enemies", len(s.level.Enemies), "coins", len(s.level.Coins))
}

func (s *Session) setState(next state.GameState) {
	if s.state != next {
		s.logger.Info("state", "from", s.state, "to", next, "frame", s.frame)
	}
	s.state = next
}

func (s *Session) emit(e system.Event) {
	s.bus.Emit(e)
}

func (s *Session) updateCamera() {
	screenW := float64(s.config.Display.ScreenWidth)
	maxX := max(s.level.Width()-screenW, 0)
	s.camX = min(max(s.player.X-float64(s.config.Display.ScreenWidth/3), 0), maxX)
}

// startShake replaces the current shake unless a stronger one is running
func (s *Session) startShake(sh system.Shake) {
	if s.shake.Frames > 0 && s.shake.Amplitude > sh.Amplitude {
		return
	}
	s.shake = sh
}

func (s *Session) updateShake() {
	if s.shake.Frames <= 0 {
		s.shakeX, s.shakeY = 0, 0
		return
	}
	s.shake.Frames--
	a := s.shake.Amplitude
	s.shakeX = (s.rng.Float64()*2 - 1) * a
	s.shakeY = (s.rng.Float64()*2 - 1) * a
}

// ApplyConfig swaps in new tuning. Levels not yet entered are generated again with it.
func (s *Session) ApplyConfig(cfg *config.GameConfig) {
	*s.config = *cfg
	s.store.Forget(s.levelNum)
	s.logger.Info("config applied", "level", s.levelNum)
}

// State returns the current game state
func (s *Session) State() state.GameState { return s.state }

// LevelNumber returns the 1-based number of the current level
func (s *Session) LevelNumber() int { return s.levelNum }

// Level returns the current level runtime
func (s *Session) Level() *Level { return s.level }

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// Frame returns the number of simulated frames
func (s *Session) Frame() int { return s.frame }

// Seed returns the seed the session was created with
func (s *Session) Seed() int64 { return s.seed }

// Camera returns the camera x offset in pixels
func (s *Session) Camera() float64 { return s.camX }

// Combo returns the current stomp combo
func (s *Session) Combo() system.Combo { return s.combo }

// Chat returns the chat sub-mode
func (s *Session) Chat() *system.Chat { return &s.chat }

// Store returns the level store
func (s *Session) Store() *Store { return s.store }

// Snapshot returns the drawable view of the current frame
func (s *Session) Snapshot() system.Snapshot {
	lvl := s.level
	screenW := s.config.Display.ScreenWidth
	left, right := s.camX, s.camX+float64(screenW)
	onScreen := func(r entity.Rect) bool {
		return r.Right() >= left && r.X <= right
	}

	snap := system.Snapshot{
		Frame:      s.frame,
		State:      s.state,
		Sky:        lvl.Sky,
		CameraX:    s.camX,
		ShakeX:     s.shakeX,
		ShakeY:     s.shakeY,
		ScreenW:    screenW,
		ScreenH:    s.config.Display.ScreenHeight,
		Tiles:      lvl.Grid.VisibleTiles(s.camX, screenW),
		ChatActive: s.chat.Active,
		ChatBuffer: string(s.chat.Buffer),
		ChatLog:    slices.Clone(s.chat.Log),
		HUD: system.HUD{
			Score:            s.player.Score,
			Lives:            s.player.Lives,
			LevelName:        lvl.Name,
			Combo:            s.combo.Count,
			ComboFrames:      s.combo.Timer,
			RapidFireFrames:  s.player.RapidFireTimer,
			InvincibleFrames: s.player.InvincibleTimer,
			Framerate:        s.config.Display.Framerate,
		},
	}

	add := func(sp system.Sprite) {
		if onScreen(sp.Rect) {
			snap.Sprites = append(snap.Sprites, sp)
		}
	}
	for _, m := range lvl.Platforms {
		add(system.Sprite{ID: m.ID, Kind: entity.KindMovingPlatform, Rect: m.Rect(), Alpha: 1})
	}
	for _, c := range lvl.Coins {
		if c.Available() {
			add(system.CoinSprite(c))
		}
	}
	for _, pu := range lvl.PowerUps {
		if !pu.Collected {
			add(system.Sprite{ID: pu.ID, Kind: entity.KindPowerUp, Rect: pu.Rect, Alpha: 1, PowerUp: pu.Kind})
		}
	}
	for _, h := range lvl.Hazards {
		if h.Alive {
			add(system.HazardSprite(h))
		}
	}
	for _, e := range lvl.Enemies {
		if sp, ok := system.EnemySprite(e); ok {
			add(sp)
		}
		if e.Kind == entity.KindHealer && e.HealTarget != 0 {
			if t := lvl.Enemy(e.HealTarget); t != nil && t.Alive {
				x1, y1 := e.Center()
				x2, y2 := t.Center()
				snap.Beams = append(snap.Beams, system.Beam{X1: x1, Y1: y1, X2: x2, Y2: y2})
			}
		}
	}
	if b := lvl.Boss; b != nil && b.Alive {
		add(system.BossSprite(b))
		if s.state == state.StateBossEncounter {
			snap.HUD.BossHealth = b.Health
			snap.HUD.BossMaxHealth = b.MaxHealth
		}
	}
	for _, proj := range lvl.Projectiles {
		add(system.Sprite{Kind: entity.KindProjectile, Rect: proj.Rect(), Alpha: 1, FacingRight: proj.VX > 0})
	}
	for _, pt := range lvl.Particles {
		add(system.ParticleSprite(pt))
	}
	if s.player.Alive {
		add(system.PlayerSprite(s.player, s.frame))
	}

	return snap
}
