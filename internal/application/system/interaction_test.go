package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/domain/entity"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

func createTestInteraction() (*InteractionSystem, *config.GameConfig) {
	cfg := config.Default()
	return NewInteractionSystem(cfg), cfg
}

// createTestFrame puts the player with its top-left at (x, y) in an open level
func createTestFrame(t *testing.T, x, y float64) *Frame {
	t.Helper()
	return &Frame{
		Player: entity.NewPlayer(x, y, 3),
		Grid:   createOpenGrid(t),
		FlagX:  10000,
		DoorX:  10000,
		Combo:  &Combo{},
	}
}

// goombaCenteredAt places a goomba whose vertical center is at cy
func goombaCenteredAt(id entity.EntityID, x, cy float64) *entity.Enemy {
	_, h := entity.EnemySize(entity.KindGoomba)
	return entity.NewEnemy(id, entity.KindGoomba, x, cy-h/2, 2)
}

func findEvent(events []Event, typ EventType) (Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return Event{}, false
}

func TestIsStomp(t *testing.T) {
	tests := []struct {
		name   string
		vy     float64
		bottom float64
		center float64
		want   bool
	}{
		{name: "falling onto the top half", vy: 5, bottom: 100, center: 95, want: true},
		{name: "rising", vy: -2, bottom: 100, center: 95, want: false},
		{name: "standing still", vy: 0, bottom: 100, center: 95, want: false},
		{name: "too deep", vy: 5, bottom: 105, center: 95, want: false},
		{name: "just inside tolerance", vy: 5, bottom: 104.9, center: 95, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStomp(tt.vy, tt.bottom, tt.center, 10))
		})
	}
}

func TestInteractionSystem_Stomp(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("falling player stomps", func(t *testing.T) {
		f := createTestFrame(t, 100, 100-entity.PlayerHeight)
		f.Player.VY = 5
		enemy := goombaCenteredAt(1, 105, 95)
		f.Enemies = []*entity.Enemy{enemy}

		out := sys.Resolve(f)

		assert.False(t, out.Died)
		assert.False(t, enemy.Alive)
		assert.Equal(t, 200, sys.EnemyScore(entity.KindGoomba))
		assert.Equal(t, 200+cfg.Scoring.ComboStep, f.Player.Score, "award plus first combo bonus")
		assert.Equal(t, -cfg.Player.StompBounce, f.Player.VY)
		assert.Equal(t, 1, f.Combo.Count)

		ev, ok := findEvent(out.Events, EventStomp)
		require.True(t, ok)
		assert.Equal(t, 210, ev.Value)
		assert.Len(t, out.Bursts, 1)
	})

	t.Run("rising player dies", func(t *testing.T) {
		f := createTestFrame(t, 100, 100-entity.PlayerHeight)
		f.Player.VY = -2
		enemy := goombaCenteredAt(1, 105, 95)
		f.Enemies = []*entity.Enemy{enemy}

		out := sys.Resolve(f)

		assert.True(t, out.Died)
		assert.True(t, enemy.Alive)
		_, ok := findEvent(out.Events, EventDeath)
		assert.True(t, ok)
		require.NotNil(t, out.Shake)
	})

	t.Run("invincibility suppresses contact death", func(t *testing.T) {
		f := createTestFrame(t, 100, 100-entity.PlayerHeight)
		f.Player.VY = -2
		f.Player.InvincibleTimer = 10
		f.Enemies = []*entity.Enemy{goombaCenteredAt(1, 105, 95)}

		out := sys.Resolve(f)

		assert.False(t, out.Died)
	})

	t.Run("fading teleporter cannot be touched", func(t *testing.T) {
		f := createTestFrame(t, 100, 100-entity.PlayerHeight)
		f.Player.VY = -2
		tp := entity.NewEnemy(1, entity.KindTeleporter, 105, 80, 0)
		tp.Teleport = entity.TeleportFadeOut
		f.Enemies = []*entity.Enemy{tp}

		out := sys.Resolve(f)

		assert.False(t, out.Died)
		assert.True(t, tp.Alive)
	})

	t.Run("variant scores", func(t *testing.T) {
		want := map[entity.Kind]int{
			entity.KindGoomba: 200, entity.KindKoopa: 200, entity.KindRager: 300,
			entity.KindSpinner: 300, entity.KindGhost: 400, entity.KindSlime: 250,
			entity.KindTeleporter: 500, entity.KindThief: 500, entity.KindDodger: 400,
			entity.KindShielder: 350, entity.KindHealer: 350,
		}
		for kind, score := range want {
			assert.Equal(t, score, sys.EnemyScore(kind), kind.String())
		}
	})
}

func TestCombo(t *testing.T) {
	t.Run("consecutive kills escalate", func(t *testing.T) {
		c := &Combo{}
		assert.Equal(t, 10, c.Hit(10, 100, 120))
		c.Tick()
		assert.Equal(t, 20, c.Hit(10, 100, 120))
		c.Tick()
		assert.Equal(t, 30, c.Hit(10, 100, 120))
		assert.Equal(t, 3, c.Count)
	})

	t.Run("bonus is capped", func(t *testing.T) {
		c := &Combo{}
		var bonus int
		for i := 0; i < 15; i++ {
			bonus = c.Hit(10, 100, 120)
		}
		assert.Equal(t, 100, bonus)
	})

	t.Run("resets after the window", func(t *testing.T) {
		c := &Combo{}
		c.Hit(10, 100, 120)
		c.Hit(10, 100, 120)

		for i := 0; i < 119; i++ {
			c.Tick()
		}
		assert.Equal(t, 2, c.Count, "still inside the window")

		c.Tick()
		assert.Equal(t, 0, c.Count)
		assert.Equal(t, 10, c.Hit(10, 100, 120))
	})
}

func TestInteractionSystem_Collectibles(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("coin is collected once", func(t *testing.T) {
		f := createTestFrame(t, 100, 100)
		coin := entity.NewCoin(1, 105, 105)
		stolen := entity.NewCoin(2, 110, 105)
		stolen.Stolen = true
		f.Coins = []*entity.Coin{coin, stolen}

		out := sys.Resolve(f)
		assert.True(t, coin.Collected)
		assert.False(t, stolen.Collected)
		assert.Equal(t, cfg.Scoring.Coin, f.Player.Score)
		assert.Len(t, out.Bursts, 1)

		sys.Resolve(f)
		assert.Equal(t, cfg.Scoring.Coin, f.Player.Score)
	})

	tests := []struct {
		kind  entity.PowerUpKind
		check func(t *testing.T, p *entity.Player)
	}{
		{kind: entity.PowerExtraLife, check: func(t *testing.T, p *entity.Player) { assert.Equal(t, 4, p.Lives) }},
		{kind: entity.PowerRapidFire, check: func(t *testing.T, p *entity.Player) {
			assert.Equal(t, cfg.PowerUps.RapidFireFrames, p.RapidFireTimer)
		}},
		{kind: entity.PowerInvincibility, check: func(t *testing.T, p *entity.Player) {
			assert.Equal(t, cfg.PowerUps.InvincibilityFrames, p.InvincibleTimer)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := createTestFrame(t, 100, 100)
			pu := entity.NewPowerUp(1, tt.kind, 105, 105)
			f.PowerUps = []*entity.PowerUp{pu}

			out := sys.Resolve(f)

			assert.True(t, pu.Collected)
			tt.check(t, f.Player)
			ev, ok := findEvent(out.Events, EventPowerUp)
			require.True(t, ok)
			assert.Equal(t, tt.kind.String(), ev.Text)
		})
	}

	t.Run("extra life is capped", func(t *testing.T) {
		f := createTestFrame(t, 100, 100)
		f.Player.Lives = cfg.Player.MaxLives
		f.PowerUps = []*entity.PowerUp{entity.NewPowerUp(1, entity.PowerExtraLife, 105, 105)}

		sys.Resolve(f)

		assert.Equal(t, cfg.Player.MaxLives, f.Player.Lives)
	})
}

func TestInteractionSystem_Projectiles(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("kills an enemy", func(t *testing.T) {
		f := createTestFrame(t, 0, 0)
		enemy := entity.NewEnemy(1, entity.KindKoopa, 300, 100, 2)
		proj := entity.NewProjectile(295, 110, true, 10)
		f.Enemies = []*entity.Enemy{enemy}
		f.Projectiles = []*entity.Projectile{proj}

		out := sys.Resolve(f)

		assert.False(t, enemy.Alive)
		assert.False(t, proj.Alive)
		assert.Equal(t, cfg.Enemies.Koopa.Score, f.Player.Score)
		_, ok := findEvent(out.Events, EventKill)
		assert.True(t, ok)
		assert.Equal(t, 0, f.Combo.Count, "shots do not feed the combo")
	})

	t.Run("shielder absorbs", func(t *testing.T) {
		f := createTestFrame(t, 0, 0)
		shielder := entity.NewEnemy(1, entity.KindShielder, 300, 100, 1)
		proj := entity.NewProjectile(295, 110, true, 10)
		f.Enemies = []*entity.Enemy{shielder}
		f.Projectiles = []*entity.Projectile{proj}

		sys.Resolve(f)

		assert.True(t, shielder.Alive)
		assert.False(t, proj.Alive)
		assert.Zero(t, f.Player.Score)
	})

	t.Run("damages the boss", func(t *testing.T) {
		f := createTestFrame(t, 0, 0)
		f.Boss = entity.NewBoss(9, 300, 96, 10, 200, 600, 2)
		proj := entity.NewProjectile(295, 120, true, 10)
		f.Projectiles = []*entity.Projectile{proj}

		out := sys.Resolve(f)

		assert.Equal(t, 9, f.Boss.Health)
		assert.False(t, proj.Alive)
		assert.Equal(t, cfg.Boss.HitScore, f.Player.Score)
		ev, ok := findEvent(out.Events, EventBossHit)
		require.True(t, ok)
		assert.Equal(t, 9, ev.Value)
	})

	t.Run("one projectile hits one target", func(t *testing.T) {
		f := createTestFrame(t, 0, 0)
		a := entity.NewEnemy(1, entity.KindGoomba, 300, 100, 2)
		b := entity.NewEnemy(2, entity.KindGoomba, 302, 100, 2)
		f.Enemies = []*entity.Enemy{a, b}
		f.Projectiles = []*entity.Projectile{entity.NewProjectile(295, 110, true, 10)}

		sys.Resolve(f)

		assert.False(t, a.Alive)
		assert.True(t, b.Alive)
	})
}

func TestInteractionSystem_Boss(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("stomp damages and bounces", func(t *testing.T) {
		f := createTestFrame(t, 310, 96-entity.PlayerHeight+4)
		f.Player.VY = 6
		f.Boss = entity.NewBoss(9, 300, 96, 10, 200, 600, 2)

		out := sys.Resolve(f)

		assert.False(t, out.Died)
		assert.Equal(t, 9, f.Boss.Health)
		assert.Equal(t, -cfg.Player.StompBounce, f.Player.VY)
	})

	t.Run("side contact kills", func(t *testing.T) {
		f := createTestFrame(t, 290, 120)
		f.Boss = entity.NewBoss(9, 300, 96, 10, 200, 600, 2)

		out := sys.Resolve(f)

		assert.True(t, out.Died)
	})
}

func TestInteractionSystem_Hazards(t *testing.T) {
	sys, _ := createTestInteraction()
	spikes, err := ParseGrid([]string{
		"..........",
		"..........",
		"..........",
		"..........",
		"....^.....",
		"##########",
	}, 32)
	require.NoError(t, err)

	t.Run("spike tile kills", func(t *testing.T) {
		f := createTestFrame(t, 130, 128)
		f.Grid = spikes

		assert.True(t, sys.Resolve(f).Died)
	})

	t.Run("spike tile ignores stomp logic", func(t *testing.T) {
		f := createTestFrame(t, 130, 100)
		f.Player.VY = 5
		f.Grid = spikes

		assert.True(t, sys.Resolve(f).Died)
	})

	t.Run("invincible player walks over spikes", func(t *testing.T) {
		f := createTestFrame(t, 130, 128)
		f.Grid = spikes
		f.Player.InvincibleTimer = 5

		assert.False(t, sys.Resolve(f).Died)
	})

	t.Run("retracted trap is safe", func(t *testing.T) {
		f := createTestFrame(t, 300, 128)
		trap := entity.NewSpikeTrap(1, 300, 144, 0)
		f.Hazards = []*entity.Hazard{trap}

		assert.False(t, sys.Resolve(f).Died)

		trap.Extended = true
		assert.True(t, sys.Resolve(f).Died)
	})

	t.Run("falling spike kills", func(t *testing.T) {
		f := createTestFrame(t, 300, 128)
		f.Hazards = []*entity.Hazard{entity.NewFallingSpike(1, 300, 110)}

		assert.True(t, sys.Resolve(f).Died)
	})

	t.Run("falling out of the screen kills", func(t *testing.T) {
		f := createTestFrame(t, 300, 601)

		assert.True(t, sys.Resolve(f).Died)
	})
}

func TestInteractionSystem_Exit(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("flag completes the level", func(t *testing.T) {
		f := createTestFrame(t, 500, 128)
		f.FlagX = 500

		out := sys.Resolve(f)

		assert.True(t, out.ReachedFlag)
		assert.Equal(t, cfg.Scoring.Flag, f.Player.Score)
		_, ok := findEvent(out.Events, EventLevelComplete)
		assert.True(t, ok)
	})

	t.Run("short of the flag", func(t *testing.T) {
		f := createTestFrame(t, 499, 128)
		f.FlagX = 500

		assert.False(t, sys.Resolve(f).ReachedFlag)
	})

	t.Run("door starts the encounter", func(t *testing.T) {
		f := createTestFrame(t, 500, 128)
		f.IsBoss = true
		f.DoorX = 480
		f.FlagX = 0

		out := sys.Resolve(f)

		assert.True(t, out.ReachedDoor)
		assert.False(t, out.ReachedFlag)
	})

	t.Run("boss defeat in the encounter", func(t *testing.T) {
		f := createTestFrame(t, 500, 128)
		f.IsBoss = true
		f.BossMode = true
		f.Boss = entity.NewBoss(9, 900, 96, 1, 800, 1000, 2)
		f.Boss.TakeDamage(1)

		out := sys.Resolve(f)

		assert.True(t, out.BossDefeated)
		assert.Equal(t, cfg.Boss.DefeatScore, f.Player.Score)
		require.NotNil(t, out.Shake)
		assert.Equal(t, cfg.Feedback.BossShakeAmplitude, out.Shake.Amplitude)
		assert.Equal(t, cfg.Feedback.BossShakeFrames, out.Shake.Frames)
	})

	t.Run("living boss holds the encounter", func(t *testing.T) {
		f := createTestFrame(t, 500, 128)
		f.IsBoss = true
		f.BossMode = true
		f.Boss = entity.NewBoss(9, 900, 96, 5, 800, 1000, 2)

		out := sys.Resolve(f)

		assert.False(t, out.BossDefeated)
		assert.False(t, out.ReachedDoor)
	})
}

func TestInteractionSystem_ApplyDeath(t *testing.T) {
	sys, cfg := createTestInteraction()

	t.Run("respawns with a life left", func(t *testing.T) {
		p := entity.NewPlayer(700, 400, 3)
		p.VX, p.VY = 5, 9
		p.InvincibleTimer = 10
		p.RapidFireTimer = 10
		combo := &Combo{Count: 3, Timer: 50}

		over := sys.ApplyDeath(p, combo)

		assert.False(t, over)
		assert.Equal(t, 2, p.Lives)
		assert.Equal(t, cfg.Player.SpawnX, p.X)
		assert.Equal(t, cfg.Player.SpawnY, p.Y)
		assert.Zero(t, p.VX)
		assert.Zero(t, p.VY)
		assert.False(t, p.IsInvincible())
		assert.False(t, p.HasRapidFire())
		assert.Equal(t, Combo{}, *combo)
	})

	t.Run("last life ends the game", func(t *testing.T) {
		p := entity.NewPlayer(700, 400, 1)

		assert.True(t, sys.ApplyDeath(p, nil))
		assert.Equal(t, 0, p.Lives)
		assert.False(t, p.Alive)
	})

	t.Run("dead players are not resolved", func(t *testing.T) {
		f := createTestFrame(t, 300, 700)
		f.Player.Alive = false

		assert.False(t, sys.Resolve(f).Died)
	})
}

func TestSweep(t *testing.T) {
	items := []*entity.Projectile{
		{Alive: true},
		{Alive: false},
		{Alive: true},
		{Alive: false},
	}
	snapshot := append([]*entity.Projectile(nil), items...)

	kept := Sweep(items, func(p *entity.Projectile) bool { return p.Alive })

	assert.Len(t, kept, 2)
	assert.Equal(t, snapshot, items, "input is untouched")
	for _, p := range kept {
		assert.True(t, p.Alive)
	}
}
