package config

// Default returns the built-in configuration.
// It mirrors cmd/mayro/configs/game.yaml and is used when no file can be read.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			TileSize:     32,
		},
		Physics: PhysicsConfig{
			Gravity:           0.8,
			MaxFallSpeed:      12,
			PlatformTolerance: 10,
		},
		Player: PlayerConfig{
			Speed:             5,
			JumpForce:         14,
			DoubleJumpForce:   11,
			DoubleJump:        true,
			StompBounce:       7,
			StartLives:        3,
			MaxLives:          5,
			SpawnX:            100,
			SpawnY:            320,
			ProjectileSpeed:   10,
			ShootCooldown:     20,
			RapidFireCooldown: 6,
		},
		Enemies: EnemiesConfig{
			Goomba:     EnemyConfig{Speed: 2, Score: 200},
			Koopa:      EnemyConfig{Speed: 2.4, Score: 200},
			Rager:      EnemyConfig{Speed: 1.5, SpeedStep: 0.5, Interval: 240, Score: 300},
			Spinner:    EnemyConfig{Speed: 2, FastSpeed: 6, Interval: 150, Score: 300},
			Ghost:      EnemyConfig{Radius: 250, Accel: 0.12, MaxSpeed: 3, Decay: 0.95, Score: 400},
			Slime:      EnemyConfig{Speed: 1.5, Impulse: 9, Interval: 90, Score: 250},
			Teleporter: EnemyConfig{Interval: 180, Duration: 20, Reach: 160, Score: 500},
			Thief:      EnemyConfig{Radius: 300, Reach: 40, Accel: 0.15, MaxSpeed: 3.5, Decay: 0.95, Duration: 120, Cooldown: 240, Score: 500},
			Dodger:     EnemyConfig{Speed: 1.5, Radius: 90, Impulse: 7, Decay: 0.85, Cooldown: 60, Score: 400},
			Shielder:   EnemyConfig{Speed: 1, Radius: 200, Score: 350},
			Healer:     EnemyConfig{Speed: 1, Radius: 200, Reach: 160, Chance: 0.02, Cooldown: 90, Score: 350},
		},
		Boss: BossConfig{
			Health:         10,
			HealthPerBoss:  5,
			Speed:          2,
			PhaseInterval:  180,
			HitScore:       100,
			DefeatScore:    5000,
			MinionSpread:   40,
			PhaseTwoSpawns: 3,
		},
		Scoring: ScoringConfig{
			Coin:           100,
			Flag:           1000,
			StompTolerance: 10,
			ComboWindow:    120,
			ComboStep:      10,
			ComboCap:       100,
		},
		PowerUps: PowerUpConfig{
			RapidFireFrames:     600,
			InvincibilityFrames: 480,
		},
		Hazards: HazardConfig{
			FallingSpikeTrigger: 48,
			SpikeTrapInterval:   120,
		},
		Feedback: FeedbackConfig{
			ShakeAmplitude:     4,
			ShakeFrames:        15,
			BossShakeAmplitude: 12,
			BossShakeFrames:    40,
			ParticleGravity:    0.3,
			ParticleLifetime:   30,
			BurstCount:         8,
		},
		Generator: GeneratorConfig{
			Rows:              18,
			GroundRow:         14,
			BaseWidth:         60,
			WidthPerLevel:     20,
			PitSegments:       5,
			SpikeChance:       0.12,
			CeilingSpikeOdds:  0.15,
			TallPipeChance:    0.3,
			PlacementAttempts: 20,
		},
		Session: SessionConfig{
			MaxLevels: 6,
			BossEvery: 3,
		},
	}
}
