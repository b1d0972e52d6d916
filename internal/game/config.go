package game

// MatchConfig holds the tunables for a match. Zero values are not useful;
// start from DefaultConfig and override fields.
type MatchConfig struct {
	MapWidth  int
	MapHeight int

	Gravity         float64
	MaxMuzzleVel    float64
	DragCoefficient float64
	MaxWind         float64
	ShellMass       float64
	ExplosionRadius float64

	TankBodySize  Vec2
	TankClearance float64

	InitAngle   float64
	InitPower   float64
	PlayerCount int

	FrameRate     float64 // seconds per simulation tick
	TraceInterval float64 // seconds between tracer samples
	MaxTraces     int
}

// DefaultConfig returns the stock match tunables.
func DefaultConfig() MatchConfig {
	return MatchConfig{
		MapWidth:  1280,
		MapHeight: 720,

		Gravity:         200,
		MaxMuzzleVel:    750,
		DragCoefficient: 0.0025,
		MaxWind:         10,
		ShellMass:       100,
		ExplosionRadius: 50,

		TankBodySize:  Vec2{25, 25},
		TankClearance: 4,

		InitAngle:   90,
		InitPower:   50,
		PlayerCount: 2,

		FrameRate:     1.0 / 60,
		TraceInterval: 0.1,
		MaxTraces:     10,
	}
}
