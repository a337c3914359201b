// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/session"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Playing is the main gameplay scene. It feeds input to a session and draws its snapshots.
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	input   system.InputSource
	logger  *log.Logger
	sinks   []system.EventSink

	// Input recording
	recorder       *Recorder
	recordFilename string

	// Hot-reloaded configs, applied between frames
	reloads <-chan *config.GameConfig
}

// Option configures the Playing scene
type Option func(*Playing)

// WithInput replaces the keyboard with another input source
func WithInput(src system.InputSource) Option {
	return func(p *Playing) { p.input = src }
}

// WithLogger sets the logger shared with the session
func WithLogger(l *log.Logger) Option {
	return func(p *Playing) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRecording records every frame of input and saves it to path
func WithRecording(path string) Option {
	return func(p *Playing) { p.recordFilename = path }
}

// WithReloads applies configs received on ch to the running session
func WithReloads(ch <-chan *config.GameConfig) Option {
	return func(p *Playing) { p.reloads = ch }
}

// WithSink subscribes an extra event sink, such as a sound player
func WithSink(sink system.EventSink) Option {
	return func(p *Playing) { p.sinks = append(p.sinks, sink) }
}

// New creates a new Playing scene running a session seeded with seed
func New(cfg *config.GameConfig, seed int64, opts ...Option) *Playing {
	p := &Playing{
		config: cfg,
		input:  &Keyboard{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	sessOpts := []session.Option{
		session.WithLogger(p.logger),
		session.WithSink(session.NewLogSink(p.logger)),
	}
	for _, sink := range p.sinks {
		sessOpts = append(sessOpts, session.WithSink(sink))
	}
	p.session = session.New(cfg, seed, sessOpts...)

	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed)
		p.logger.Info("recording enabled", "file", p.recordFilename, "seed", seed)
	}

	return p
}

// Session returns the session driven by the scene
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update advances the session by one frame (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	p.applyReloads()

	// F5: Save recording manually
	if p.recorder != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.input.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	before := p.session.State()
	p.session.Update(input)

	// The recording ends with the run
	if after := p.session.State(); after != before && after.Frozen() && p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) applyReloads() {
	if p.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			if p.recorder != nil {
				if err := p.recorder.RecordConfig(cfg); err != nil {
					p.logger.Error("failed to record config change", "err", err)
				}
			}
			p.session.ApplyConfig(cfg)
		default:
			return
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, p.session.Snapshot())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("playing", "seed", p.session.Seed())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
