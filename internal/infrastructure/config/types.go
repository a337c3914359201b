package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Boss      BossConfig      `yaml:"boss"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	PowerUps  PowerUpConfig   `yaml:"powerUps"`
	Hazards   HazardConfig    `yaml:"hazards"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
	Generator GeneratorConfig `yaml:"generator"`
	Session   SessionConfig   `yaml:"session"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
	TileSize     int `yaml:"tileSize"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	// PlatformTolerance is the one-way platform threshold around the platform's center line
	PlatformTolerance float64 `yaml:"platformTolerance"`
}

type PlayerConfig struct {
	Speed             float64 `yaml:"speed"`
	JumpForce         float64 `yaml:"jumpForce"`
	DoubleJumpForce   float64 `yaml:"doubleJumpForce"`
	DoubleJump        bool    `yaml:"doubleJump"`
	StompBounce       float64 `yaml:"stompBounce"`
	StartLives        int     `yaml:"startLives"`
	MaxLives          int     `yaml:"maxLives"`
	SpawnX            float64 `yaml:"spawnX"`
	SpawnY            float64 `yaml:"spawnY"`
	ProjectileSpeed   float64 `yaml:"projectileSpeed"`
	ShootCooldown     int     `yaml:"shootCooldown"`
	RapidFireCooldown int     `yaml:"rapidFireCooldown"`
}

// EnemyConfig tunes one behavior variant. Fields unused by a variant are left zero.
type EnemyConfig struct {
	Speed     float64 `yaml:"speed"`
	FastSpeed float64 `yaml:"fastSpeed,omitempty"`
	SpeedStep float64 `yaml:"speedStep,omitempty"`
	Score     int     `yaml:"score"`
	Interval  int     `yaml:"interval,omitempty"`
	Duration  int     `yaml:"duration,omitempty"`
	Cooldown  int     `yaml:"cooldown,omitempty"`
	Radius    float64 `yaml:"radius,omitempty"`
	Reach     float64 `yaml:"reach,omitempty"`
	Accel     float64 `yaml:"accel,omitempty"`
	MaxSpeed  float64 `yaml:"maxSpeed,omitempty"`
	Impulse   float64 `yaml:"impulse,omitempty"`
	Decay     float64 `yaml:"decay,omitempty"`
	Chance    float64 `yaml:"chance,omitempty"`
}

type EnemiesConfig struct {
	Goomba     EnemyConfig `yaml:"goomba"`
	Koopa      EnemyConfig `yaml:"koopa"`
	Rager      EnemyConfig `yaml:"rager"`
	Spinner    EnemyConfig `yaml:"spinner"`
	Ghost      EnemyConfig `yaml:"ghost"`
	Slime      EnemyConfig `yaml:"slime"`
	Teleporter EnemyConfig `yaml:"teleporter"`
	Thief      EnemyConfig `yaml:"thief"`
	Dodger     EnemyConfig `yaml:"dodger"`
	Shielder   EnemyConfig `yaml:"shielder"`
	Healer     EnemyConfig `yaml:"healer"`
}

type BossConfig struct {
	Health         int     `yaml:"health"`
	HealthPerBoss  int     `yaml:"healthPerBoss"`
	Speed          float64 `yaml:"speed"`
	PhaseInterval  int     `yaml:"phaseInterval"`
	HitScore       int     `yaml:"hitScore"`
	DefeatScore    int     `yaml:"defeatScore"`
	MinionSpread   float64 `yaml:"minionSpread"`
	PhaseTwoSpawns int     `yaml:"phaseTwoSpawns"`
}

type ScoringConfig struct {
	Coin           int     `yaml:"coin"`
	Flag           int     `yaml:"flag"`
	StompTolerance float64 `yaml:"stompTolerance"`
	ComboWindow    int     `yaml:"comboWindow"`
	ComboStep      int     `yaml:"comboStep"`
	ComboCap       int     `yaml:"comboCap"`
}

type PowerUpConfig struct {
	RapidFireFrames     int `yaml:"rapidFireFrames"`
	InvincibilityFrames int `yaml:"invincibilityFrames"`
}

type HazardConfig struct {
	FallingSpikeTrigger float64 `yaml:"fallingSpikeTrigger"`
	SpikeTrapInterval   int     `yaml:"spikeTrapInterval"`
}

type FeedbackConfig struct {
	ShakeAmplitude     float64 `yaml:"shakeAmplitude"`
	ShakeFrames        int     `yaml:"shakeFrames"`
	BossShakeAmplitude float64 `yaml:"bossShakeAmplitude"`
	BossShakeFrames    int     `yaml:"bossShakeFrames"`
	ParticleGravity    float64 `yaml:"particleGravity"`
	ParticleLifetime   int     `yaml:"particleLifetime"`
	BurstCount         int     `yaml:"burstCount"`
}

type GeneratorConfig struct {
	Rows              int     `yaml:"rows"`
	GroundRow         int     `yaml:"groundRow"`
	BaseWidth         int     `yaml:"baseWidth"`
	WidthPerLevel     int     `yaml:"widthPerLevel"`
	PitSegments       int     `yaml:"pitSegments"`
	SpikeChance       float64 `yaml:"spikeChance"`
	CeilingSpikeOdds  float64 `yaml:"ceilingSpikeChance"`
	TallPipeChance    float64 `yaml:"tallPipeChance"`
	PlacementAttempts int     `yaml:"placementAttempts"`
}

type SessionConfig struct {
	MaxLevels int `yaml:"maxLevels"`
	BossEvery int `yaml:"bossEvery"`
}
