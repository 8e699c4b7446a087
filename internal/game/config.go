package game

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Surface
const (
	DefaultWidth  = 600 // Logical surface width
	DefaultHeight = 800 // Logical surface height
	AspectRatio   = 3.0 / 4.0
)

// Basket
const (
	BasketWidth   = 80
	BasketHeight  = 10
	BasketSpeed   = 9
	BasketBottom  = 40 // Distance from the basket top to the surface bottom
	basketOffsetX = 50 // Initial offset left of center
)

// Balls
const (
	MaxBalls       = 6
	BallRadius     = 12
	BallBaseSpeed  = 2.0
	ballSpawnInset = 20  // Balls spawn in [0, width-inset)
	SpeedRampStep  = 0.5 // Added to every ball when score hits a multiple of SpeedRampEvery
	SpeedRampEvery = 6
	MinBallSpeed   = 1.0 // Floor applied by the slow power-up
	SlowPowerStep  = 1.0
)

// Odds
const (
	singleBallMatchChance = 0.95
	powerUpResetChance    = 0.10
	powerUpSpawnChance    = 0.10
)

// Scoring and pacing
const (
	InitialLives        = 3
	CatchesPerRotation  = 3 // Basket color changes every N catches
	RotationsPerLevelUp = 2 // Pool grows every N basket color changes
	DoublePointsTicks   = 800
)

// Particles
const (
	BurstSize      = 10
	ParticleSpread = 4.0 // Velocity components are uniform in [-spread/2, spread/2)
	ParticleFade   = 0.02
)

// Banners and effects
const (
	BackgroundStep       = 0.002
	LevelUpFade          = 0.01
	FlashTicks           = 10
	AchievementTicks     = 200
	AchievementHiddenY   = -50
	AchievementRestingY  = 40
	AchievementSlideStep = 5
)

// Countdown
const (
	CountdownSteps = 3
)

// Save button
const (
	SaveButtonWidth   = 150
	SaveButtonHeight  = 40
	saveButtonOffsetY = 80
)

// Name capture
const (
	MaxNameLength = 3
)
