package replay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

// Version is the replay format version written by the recorder
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int    `json:"f"`            // Frame number
	L  bool   `json:"l,omitempty"`  // Left
	R  bool   `json:"r,omitempty"`  // Right
	J  bool   `json:"j,omitempty"`  // Jump
	S  bool   `json:"s,omitempty"`  // Shoot
	P  bool   `json:"p,omitempty"`  // Pause
	RS bool   `json:"rs,omitempty"` // Restart
	CT bool   `json:"ct,omitempty"` // ChatToggle
	C  string `json:"c,omitempty"`  // Typed characters
	SB bool   `json:"sb,omitempty"` // Submit
	CN bool   `json:"cn,omitempty"` // Cancel
	BS bool   `json:"bs,omitempty"` // Backspace
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`

	// Configs applied during the run, in frame order
	Configs []ConfigChange `json:"configs,omitempty"`
}

// ConfigChange is a config swapped in before the input of frame F was simulated
type ConfigChange struct {
	F    int    `json:"f"`
	YAML string `json:"yaml"`
}

// EncodeConfig records cfg as applied at frame
func EncodeConfig(frame int, cfg *config.GameConfig) (ConfigChange, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return ConfigChange{}, fmt.Errorf("failed to encode config: %w", err)
	}
	return ConfigChange{F: frame, YAML: string(raw)}, nil
}

// Config decodes the recorded config. The YAML is complete, so it is not layered on the defaults.
func (cc ConfigChange) Config() (*config.GameConfig, error) {
	var cfg config.GameConfig
	if err := yaml.Unmarshal([]byte(cc.YAML), &cfg); err != nil {
		return nil, fmt.Errorf("config at frame %d: %w", cc.F, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config at frame %d: %w", cc.F, err)
	}
	return &cfg, nil
}

// Encode converts one frame of input to its recorded form
func Encode(frame int, in system.Input) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		S:  in.Shoot,
		P:  in.Pause,
		RS: in.Restart,
		CT: in.ChatToggle,
		C:  string(in.Chars),
		SB: in.Submit,
		CN: in.Cancel,
		BS: in.Backspace,
	}
}

// Input converts a recorded frame back to input
func (fi FrameInput) Input() system.Input {
	in := system.Input{
		Left:       fi.L,
		Right:      fi.R,
		Jump:       fi.J,
		Shoot:      fi.S,
		Pause:      fi.P,
		Restart:    fi.RS,
		ChatToggle: fi.CT,
		Submit:     fi.SB,
		Cancel:     fi.CN,
		Backspace:  fi.BS,
	}
	if fi.C != "" {
		in.Chars = []rune(fi.C)
	}
	return in
}
