package constants

// Particle Intensity
const (
	MinParticleIntensity     = 1
	MaxParticleIntensity     = 5
	DefaultParticleIntensity = 3
)

// Effect Physics (per tick)
const (
	// ParticleDamping is the velocity multiplier applied to explosion particles each tick
	ParticleDamping = 0.98

	// SparkDamping is the velocity multiplier applied to sparks each tick
	SparkDamping = 0.95

	// MaxEffectsPerKind bounds each effect collection; spawns beyond it are dropped
	MaxEffectsPerKind = 8192
)

// Effect Lifetimes (ticks)
const (
	TracerLife          = 30
	ShockwaveLife       = 60
	SparkTrailLife      = 20
	ParticleBaseLife    = 60
	ParticleLifePerFX   = 10
	SparkStormBaseLife  = 40
	SparkStormLifePerFX = 5
)

// Spark Trail
const (
	// SparkTrailChance is the probability of a trail spark per snake move
	SparkTrailChance = 0.3

	// SparkTrailJitter is the pixel spread of a trail spark around the head center
	SparkTrailJitter = 10.0

	// SparkTrailVelocity is the max absolute pixel velocity of a trail spark
	SparkTrailVelocity = 1.0
)

// Spawn Sizes
const (
	FoodExplosionPerFX  = 20
	FoodSparksPerFX     = 15
	FoodShockwaveRadius = 50

	LevelUpSparksPerFX     = 50
	LevelUpShockwaveRadius = 200

	DeathExplosionPerFX = 50
	DeathSparksPerFX    = 100

	StartShockwaveRadius   = 100
	RestartShockwaveRadius = 150
)
