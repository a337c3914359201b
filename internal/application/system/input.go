package system

import "unicode"

// Input holds one frame of player input.
// Held keys are levels; Pause, Restart, ChatToggle, Submit, Cancel and Backspace are edges.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Shoot bool

	Pause      bool
	Restart    bool
	ChatToggle bool

	// Text entry (only read while chat is open)
	Chars     []rune
	Submit    bool
	Cancel    bool
	Backspace bool
}

// InputSource produces the input for the next frame
type InputSource interface {
	Poll() Input
}

// ChatMaxLen is the longest line the chat buffer accepts
const ChatMaxLen = 60

// ChatHistory is the number of submitted lines kept
const ChatHistory = 5

// Chat is the text-entry sub-mode
type Chat struct {
	Active bool
	Buffer []rune
	Log    []string
}

// Handle feeds one frame of input to the chat. It returns the submitted line, if any.
func (c *Chat) Handle(in Input) (line string, submitted bool) {
	if in.ChatToggle && !c.Active {
		c.Active = true
		c.Buffer = c.Buffer[:0]
		return "", false
	}
	if !c.Active {
		return "", false
	}

	if in.Cancel {
		c.Active = false
		c.Buffer = c.Buffer[:0]
		return "", false
	}
	if in.Backspace && len(c.Buffer) > 0 {
		c.Buffer = c.Buffer[:len(c.Buffer)-1]
	}
	for _, r := range in.Chars {
		if !unicode.IsPrint(r) || len(c.Buffer) >= ChatMaxLen {
			continue
		}
		c.Buffer = append(c.Buffer, r)
	}
	if in.Submit {
		line = string(c.Buffer)
		c.Active = false
		c.Buffer = c.Buffer[:0]
		if line == "" {
			return "", false
		}
		c.Log = append(c.Log, line)
		if len(c.Log) > ChatHistory {
			c.Log = c.Log[len(c.Log)-ChatHistory:]
		}
		return line, true
	}
	return "", false
}

// Reset closes the chat and clears its history
func (c *Chat) Reset() {
	c.Active = false
	c.Buffer = c.Buffer[:0]
	c.Log = nil
}
