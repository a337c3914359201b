package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeLine(c *Chat, s string) {
	c.Handle(Input{Chars: []rune(s)})
}

func TestChat_Lifecycle(t *testing.T) {
	c := &Chat{}

	_, ok := c.Handle(Input{Chars: []rune("ignored")})
	assert.False(t, ok)
	assert.Empty(t, c.Buffer, "closed chat ignores text")

	c.Handle(Input{ChatToggle: true})
	assert.True(t, c.Active)

	typeLine(c, "hello")
	c.Handle(Input{Backspace: true})
	assert.Equal(t, "hell", string(c.Buffer))

	line, ok := c.Handle(Input{Submit: true})
	assert.True(t, ok)
	assert.Equal(t, "hell", line)
	assert.False(t, c.Active)
	assert.Equal(t, []string{"hell"}, c.Log)
}

func TestChat_Edges(t *testing.T) {
	t.Run("cancel discards the buffer", func(t *testing.T) {
		c := &Chat{}
		c.Handle(Input{ChatToggle: true})
		typeLine(c, "secret")

		_, ok := c.Handle(Input{Cancel: true})

		assert.False(t, ok)
		assert.False(t, c.Active)
		assert.Empty(t, c.Buffer)
		assert.Empty(t, c.Log)
	})

	t.Run("empty submit is not logged", func(t *testing.T) {
		c := &Chat{}
		c.Handle(Input{ChatToggle: true})

		_, ok := c.Handle(Input{Submit: true})

		assert.False(t, ok)
		assert.False(t, c.Active)
		assert.Empty(t, c.Log)
	})

	t.Run("buffer is capped", func(t *testing.T) {
		c := &Chat{}
		c.Handle(Input{ChatToggle: true})
		typeLine(c, strings.Repeat("a", ChatMaxLen+15))

		assert.Len(t, c.Buffer, ChatMaxLen)
	})

	t.Run("control characters are dropped", func(t *testing.T) {
		c := &Chat{}
		c.Handle(Input{ChatToggle: true})
		typeLine(c, "a\tb\x00c")

		assert.Equal(t, "abc", string(c.Buffer))
	})

	t.Run("history keeps the latest lines", func(t *testing.T) {
		c := &Chat{}
		for _, s := range []string{"1", "2", "3", "4", "5", "6", "7"} {
			c.Handle(Input{ChatToggle: true})
			typeLine(c, s)
			c.Handle(Input{Submit: true})
		}

		assert.Equal(t, []string{"3", "4", "5", "6", "7"}, c.Log)

		c.Reset()
		assert.Empty(t, c.Log)
		assert.False(t, c.Active)
	})
}
