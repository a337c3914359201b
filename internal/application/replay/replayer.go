package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/session"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/state"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Replayer plays recorded input back frame by frame.
// It implements system.InputSource.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}
	for _, cc := range data.Configs {
		if _, err := cc.Config(); err != nil {
			return nil, err
		}
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Input{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// Poll returns the next recorded input, or no input once the recording ends
func (r *Replayer) Poll() system.Input {
	in, _ := r.Next()
	return in
}

// Done reports whether every recorded frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Result is the final state of a headless replay
type Result struct {
	Frames  int
	Level   int
	Score   int
	Lives   int
	PlayerX float64
	State   state.GameState
}

// Run re-simulates a recording without a window and reports where it ended.
// Recorded config changes are applied at the frames they were made.
func Run(cfg *config.GameConfig, data ReplayData, logger *log.Logger) (Result, error) {
	changes := make(map[int][]*config.GameConfig, len(data.Configs))
	for _, cc := range data.Configs {
		c, err := cc.Config()
		if err != nil {
			return Result{}, err
		}
		changes[cc.F] = append(changes[cc.F], c)
	}

	base := *cfg
	r := NewReplayer(data)
	s := session.New(&base, data.Seed, session.WithLogger(logger))

	for !r.Done() {
		for _, c := range changes[r.CurrentFrame()] {
			s.ApplyConfig(c)
		}
		s.Update(r.Poll())
	}

	return Result{
		Frames:  r.CurrentFrame(),
		Level:   s.LevelNumber(),
		Score:   s.Player().Score,
		Lives:   s.Player().Lives,
		PlayerX: s.Player().X,
		State:   s.State(),
	}, nil
}

// CreateTestReplayData creates replay data for testing from an input script
func CreateTestReplayData(seed int64, frames int, script func(frame int) system.Input) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      seed,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		var in system.Input
		if script != nil {
			in = script(i)
		}
		data.Frames[i] = Encode(i, in)
	}

	return data
}
