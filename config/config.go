package config

// PhysicsConfig contains world-level physics configuration values
type PhysicsConfig struct {
	Gravity        float64
	Friction       float64 // Multiplier applied to horizontal speed each grounded tick
	MinVelocity    float64 // Horizontal speeds below this snap to zero
	MaxEntitySpeed float64
	MaxKnockback   float64
	TileSize       float64
}

// ActorConfig contains the nominal body dimensions shared by every actor
type ActorConfig struct {
	Width        float64
	Height       float64
	ShadowWidth  float64
	BossScale    float64
	BossHealthAt int // Health capacity above which an enemy counts as a boss
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed    float64
	JumpVelocity float64

	// Combat
	Health    int
	StunTime  float64 // Stun applied when an enemy damages a player
	IdleDelay float64

	// Grab
	GrabRadius     float64
	GrabStun       float64
	GrabOffset     float64
	GrabDrag       float64 // Multiplier on player speed while holding
	ThrowSpeedX    float64
	ThrowSpeedY    float64
	ThrowStun      float64
	ThrowDamage    int
	AirAttackBonus int

	// Co-op
	JoinOffset      float64
	InactivityLimit float64 // Seconds without input before player two drops out
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Health      int
	Speed       float64
	StunTime    float64 // Stun applied when a player damages an enemy
	RetreatTime float64
	Capacity    int
}

// AIConfig contains the enemy decision-loop tuning
type AIConfig struct {
	SightDistance     float64
	AttackRange       float64
	ChaseSpeed        float64
	RetreatSpeed      float64
	PositionSpeed     float64
	EvadeChance       float64
	KickChance        float64
	PositionBand      float64 // Half-width of the in-range band while positioning
	ApproachMargin    float64 // Distance beyond attack range where chase slows down
	ChaseEvadeRange   float64 // Multiplier on attack range for evading out of chase
	PositionEvade     float64 // Multiplier on attack range for evading while positioning
	ChaseEvadeTime    float64
	PositionEvadeTime float64
	MinAttackTime     float64
	AttackSlowdown    float64 // Enemy attack clips play at this fraction of normal speed

	// Boss multipliers
	BossSight    float64
	BossRange    float64
	BossChase    float64
	BossPosition float64
	BossRetreat  float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	BaseCooldown     float64
	AttackExtend     float64
	HitboxInflate    float64 // Extra height fraction of the attack hitbox
	HitboxFacingBias float64 // Fraction of body width the hitbox is pushed forward
	KnockbackForce   float64
	AttackTimeout    float64
	DeathTime        float64
	HitFrameStart    int
	HitFrameEnd      int
}

// AnimationConfig contains animation playback rates
type AnimationConfig struct {
	FastRate      float64 // Frames per second for short clips
	SlowRate      float64
	FastMaxFrames int // Clips with at most this many frames play at FastRate
}

// LevelConfig contains stage geometry configuration values
type LevelConfig struct {
	GroundY     float64
	Rows        int
	StageWidth  int
	EndMargin   float64
	SpawnStartX []float64 // Player start X per player slot
}

// DirectorConfig contains wave placement values shared by every stage
type DirectorConfig struct {
	WaveStartX        float64
	WaveSpacing       float64
	WaveMinX          float64 // Also the lower clamp for the boss spawn
	SpawnAhead        float64 // Timed spawns land this far ahead of the lead player
	SpawnJitterMin    float64
	SpawnJitterMax    float64
	SpawnMinAhead     float64
	SpawnMinX         float64
	BossTriggerMargin float64 // Used when a stage names no trigger X
	BossSpawnMargin   float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast the camera closes on its target (0.0-1.0)
	LeadOffset      float64 // Pixels the view runs ahead of the lead player
	ShakeIntensity  float64 // Screen shake on a death, in pixels
	ShakeFrames     int
}

// LoopConfig contains fixed-step loop configuration values
type LoopConfig struct {
	MaxFrameTime float64
	FixedStep    float64
	MaxSteps     int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Actor ActorConfig
var Player PlayerConfig
var Enemy EnemyConfig
var AI AIConfig
var Combat CombatConfig
var Animation AnimationConfig
var Level LevelConfig
var Director DirectorConfig
var Loop LoopConfig
var Camera CameraConfig

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Physics = PhysicsConfig{
		Gravity:        980,
		Friction:       0.9,
		MinVelocity:    5,
		MaxEntitySpeed: 280,
		MaxKnockback:   220,
		TileSize:       16,
	}

	Actor = ActorConfig{
		Width:        47,
		Height:       47,
		ShadowWidth:  20,
		BossScale:    1.5,
		BossHealthAt: 50,
	}

	Player = PlayerConfig{
		WalkSpeed:    200,
		JumpVelocity: -400,

		Health:    100,
		StunTime:  0.35,
		IdleDelay: 0.2,

		GrabRadius:     60,
		GrabStun:       1.0,
		GrabOffset:     40,
		GrabDrag:       0.5,
		ThrowSpeedX:    400,
		ThrowSpeedY:    -200,
		ThrowStun:      0.5,
		ThrowDamage:    5,
		AirAttackBonus: 5,

		JoinOffset:      50,
		InactivityLimit: 5,
	}

	Enemy = EnemyConfig{
		Health:      50,
		Speed:       100,
		StunTime:    0.45,
		RetreatTime: 1.5,
		Capacity:    10,
	}

	AI = AIConfig{
		SightDistance:     200,
		AttackRange:       60,
		ChaseSpeed:        120,
		RetreatSpeed:      140,
		PositionSpeed:     80,
		EvadeChance:       0.3,
		KickChance:        0.3,
		PositionBand:      10,
		ApproachMargin:    50,
		ChaseEvadeRange:   1.5,
		PositionEvade:     1.2,
		ChaseEvadeTime:    0.5,
		PositionEvadeTime: 0.4,
		MinAttackTime:     0.5,
		AttackSlowdown:    0.5,

		BossSight:    1.2,
		BossRange:    1.5,
		BossChase:    0.7,
		BossPosition: 0.7,
		BossRetreat:  0.8,
	}

	Combat = CombatConfig{
		BaseCooldown:     0.5,
		AttackExtend:     20,
		HitboxInflate:    0.15,
		HitboxFacingBias: 0.35,
		KnockbackForce:   200,
		AttackTimeout:    1.5,
		DeathTime:        2.0,
		HitFrameStart:    1,
		HitFrameEnd:      2,
	}

	Animation = AnimationConfig{
		FastRate:      12,
		SlowRate:      8,
		FastMaxFrames: 3,
	}

	Level = LevelConfig{
		GroundY:     448,
		Rows:        38,
		StageWidth:  2000,
		EndMargin:   120,
		SpawnStartX: []float64{100, 150},
	}

	Director = DirectorConfig{
		WaveStartX:        360,
		WaveSpacing:       110,
		WaveMinX:          120,
		SpawnAhead:        120,
		SpawnJitterMin:    -40,
		SpawnJitterMax:    140,
		SpawnMinAhead:     80,
		SpawnMinX:         80,
		BossTriggerMargin: 400,
		BossSpawnMargin:   140,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		LeadOffset:      80,
		ShakeIntensity:  4,
		ShakeFrames:     12,
	}

	Loop = LoopConfig{
		MaxFrameTime: 1.0 / 30.0,
		FixedStep:    1.0 / 60.0,
		MaxSteps:     3,
	}
}
