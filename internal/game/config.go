package game

// World dimensions (in world units, X/Z ground plane, Y up).
// The city is a square centered on the origin; the central park keeps
// the spawn area open.
const (
	WorldSize   = 416.0 // full side length, 13 cells of CellSize
	WorldMargin = 2.0   // player clamp margin inside the border
	ParkRadius  = 58.0  // central park exclusion radius for buildings
)

// City block layout.
const (
	BlockSize   = 24.0
	StreetWidth = 8.0
	CellSize    = BlockSize + StreetWidth // 32
)

// Block generator tunables.
const (
	BlockSkipChance = 22 // percent chance a grid cell stays empty
	BuildingMinH    = 8.0
	BuildingMaxH    = 42.0
	TowerChance     = 12 // percent chance a building rerolls into the tall range
	TowerMaxH       = 64.0
)

// Facade/window layout.
const (
	FloorSpacing     = 3.0
	ColumnSpacing    = 2.5
	WindowSkipChance = 18 // percent chance a slot stays dark concrete
	WindowLitChance  = 45 // percent chance a whole building is lit
	WindowW          = 1.2
	WindowH          = 1.6
	WindowInset      = 0.015 // offset from the wall plane, avoids z-fighting
)

// Prop placement. Padding and retry caps are independent per kind.
const (
	TreeCount   = 150
	TreePadding = 1.5
	TreeTries   = 20

	BenchCount   = 44
	BenchPadding = 2.0
	BenchTries   = 30

	LampPadding = 1.0
	LampTries   = 20

	SidewalkWidth = 1.6
	SidewalkLift  = 0.06
)

// Collectibles, landmarks and wandering challenges.
const (
	CollectibleCount   = 48
	CollectiblePadding = 1.2
	CollectibleTries   = 30
	CollectRadius      = 1.8
	CollectScore       = 10

	LandmarkCount   = 8
	LandmarkPadding = 4.0
	LandmarkTries   = 30
	DiscoverRadius  = 6.0
	DiscoverScore   = 25
)

// Player movement and camera.
const (
	WalkSpeed        = 6.0
	CollisionPadding = 0.6
	MaxFrameDelta    = 0.1 // seconds; caps dt after window stalls
	EyeHeight        = 1.7
	PitchLimitDeg    = 60.0
	MouseSensitivity = 0.0022
	HeadBobFreq      = 7.4  // rad/s of the bob clock at full walk speed
	HeadBobAmp       = 0.05 // vertical offset amplitude
	HeadBobMinSpeed  = 0.5  // below this the bob eases back to zero
)

// Walkers (NPCs and wildlife).
const (
	NPCCount        = 24
	NPCWalkSpeed    = 1.4
	BirdCount       = 14
	CatCount        = 6
	WalkerCullDist  = 70.0 // beyond this walkers freeze and hide
	NPCStopChance   = 25   // percent chance a loop corner adds a full stop
	NPCStopDuration = 3.5
)

// Day/night cycle.
const (
	DayCyclePeriod = 240.0 // seconds of game time per full cycle
	SunAmbientMin  = 0.22  // midnight ambient floor
	SunAmbientMax  = 1.00  // noon ambient
	SunNightStart  = 0.55  // ambient threshold where night audio/lights ramp in
)

// Particles.
const (
	MaxParticles         = 4000
	ParticleCullDistance = 90.0
)

// Window defaults.
const (
	WindowWidthPx  = 1280
	WindowHeightPx = 720
	WindowTitle    = "Stroll"
)

// Cinematic intro.
const (
	IntroDuration = 14.0
	IntroHeight   = 90.0
	IntroRadius   = 140.0
)

// Meditation mode.
const (
	MeditateBenchRadius = 2.5
	MeditateBreathFreq  = 0.25 // Hz, slow breathing sway
	MeditateSwayAmp     = 0.035
)
