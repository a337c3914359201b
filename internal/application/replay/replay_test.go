package replay

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/state"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

func walkAndJump(frame int) system.Input {
	return system.Input{
		Right: frame%90 < 70,
		Jump:  frame%30 < 10,
		Shoot: frame%15 == 0,
	}
}

func TestFrameInput_Conversion(t *testing.T) {
	in := system.Input{
		Left:       true,
		Jump:       true,
		Shoot:      true,
		Pause:      true,
		Restart:    true,
		ChatToggle: true,
		Chars:      []rune("héllo"),
		Submit:     true,
		Cancel:     true,
		Backspace:  true,
	}

	fi := Encode(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, "héllo", fi.C)
	assert.Equal(t, in, fi.Input())
}

func TestFrameInput_OmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(Encode(3, system.Input{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3}`, string(data))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, S: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.Next()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	input, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	input, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, input.Shoot)
	assert.True(t, replayer.Done())

	_, ok = replayer.Next()
	assert.False(t, ok)
	assert.Equal(t, system.Input{}, replayer.Poll(), "idle after the end")
}

func TestReplayer_Frames(t *testing.T) {
	data := CreateTestReplayData(99999, 10, nil)
	replayer := NewReplayer(data)

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Poll()
	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip through a file", func(t *testing.T) {
		data := CreateTestReplayData(5, 120, walkAndJump)
		path := filepath.Join(dir, "ok.json")
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		loaded, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, data.Seed, loaded.Seed)
		assert.Equal(t, data.Frames, loaded.Frames)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("old version", func(t *testing.T) {
		path := filepath.Join(dir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","seed":1,"frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "unsupported replay version")
	})

	t.Run("garbage", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})
}

func TestRun_Deterministic(t *testing.T) {
	logger := log.New(io.Discard)
	data := CreateTestReplayData(2024, 900, walkAndJump)

	a, err := Run(config.Default(), data, logger)
	require.NoError(t, err)
	b, err := Run(config.Default(), data, logger)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 900, a.Frames)
	assert.GreaterOrEqual(t, a.Level, 1)
}

func TestRun_PauseHoldsTheSimulation(t *testing.T) {
	logger := log.New(io.Discard)
	data := CreateTestReplayData(7, 50, func(frame int) system.Input {
		return system.Input{Pause: frame == 0, Right: true}
	})

	res, err := Run(config.Default(), data, logger)
	require.NoError(t, err)

	assert.Equal(t, state.StatePaused, res.State)
	assert.Equal(t, 1, res.Level)
	assert.Zero(t, res.Score)
}

func TestRun_AppliesRecordedConfigs(t *testing.T) {
	logger := log.New(io.Discard)
	data := CreateTestReplayData(42, 10, func(int) system.Input { return system.Input{Right: true} })

	plain, err := Run(config.Default(), data, logger)
	require.NoError(t, err)
	assert.Greater(t, plain.PlayerX, config.Default().Player.SpawnX)

	// Speed zero from the first frame keeps the player at the spawn
	still := config.Default()
	still.Player.Speed = 0
	cc, err := EncodeConfig(0, still)
	require.NoError(t, err)
	data.Configs = []ConfigChange{cc}

	res, err := Run(config.Default(), data, logger)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Player.SpawnX, res.PlayerX)
	assert.Equal(t, 10, res.Frames)
}

func TestConfigChange_Config(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Speed = 6.5
	cfg.Enemies.Healer.Chance = 0
	cc, err := EncodeConfig(12, cfg)
	require.NoError(t, err)
	assert.Equal(t, 12, cc.F)

	decoded, err := cc.Config()
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)

	_, err = ConfigChange{F: 3, YAML: "physics: [oops"}.Config()
	assert.ErrorContains(t, err, "config at frame 3")
}
