package config

// Role is fixed for the lifetime of a session.
type Role int

const (
	RoleHost Role = iota
	RoleClient
	RoleSinglePlayer
)

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RoleClient:
		return "client"
	case RoleSinglePlayer:
		return "single"
	}
	return "unknown"
}

// ParseRole maps a flag value to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "host":
		return RoleHost, true
	case "client", "join":
		return RoleClient, true
	case "single", "solo":
		return RoleSinglePlayer, true
	}
	return 0, false
}

// Multiplayer reports whether the role exchanges messages with a peer.
func (r Role) Multiplayer() bool { return r != RoleSinglePlayer }

// Side identifies one end of the table. Host defends +z, client defends -z.
type Side int

const (
	SideHost Side = iota
	SideClient
)

// TableConfig describes the court in world units. The midline is z = 0.
type TableConfig struct {
	HalfWidth    float64 // xMax the puck may reach
	HalfLength   float64 // zMax the puck may reach outside the goal gap
	GoalHalfGap  float64 // |x| below this is inside the goal mouth
	GoalLine     float64 // |z| past this is a goal
	FallLimit    float64 // y below this means the puck left the table
	Restitution  float64
	MoveEpsilon  float64 // minimum per-axis change before a correction is written
	CellSize     int     // resolv cell size in scaled units
	SpaceScale   float64 // world units to resolv units
	SpaceMarginX float64
	SpaceMarginZ float64
}

// PaddleConfig holds paddle drive tuning.
type PaddleConfig struct {
	RestY          float64
	DriftTolerance float64
	HumanSpeed     float64
	AISpeed        float64
	ProxyAlpha     float64 // kinematic proxy smoothing on the host
	Radius         float64
	HostStart      [3]float64
	ClientStart    [3]float64
}

// PuckConfig holds puck simulation tuning.
type PuckConfig struct {
	RestY           float64
	DriftTolerance  float64
	ReconcileAlpha  float64
	SnapDistance    float64 // z divergence that forces a hard snap
	ImpactThreshold float64 // speed rise treated as a collision
	HitRadius       float64 // paddle proximity that classifies an impact as a hit
	Radius          float64
	Friction        float64
}

// MatchConfig holds match rules.
type MatchConfig struct {
	GoalsToWin int
}

var (
	Table  TableConfig
	Paddle PaddleConfig
	Puck   PuckConfig
	Match  MatchConfig
)

func init() {
	Table = TableConfig{
		HalfWidth:    2.85,
		HalfLength:   4.85,
		GoalHalfGap:  1.3,
		GoalLine:     5.4,
		FallLimit:    -2,
		Restitution:  0.85,
		MoveEpsilon:  0.001,
		CellSize:     16,
		SpaceScale:   100,
		SpaceMarginX: 4,
		SpaceMarginZ: 7,
	}

	Paddle = PaddleConfig{
		RestY:          0.2,
		DriftTolerance: 0.05,
		HumanSpeed:     15.0,
		AISpeed:        20.0,
		ProxyAlpha:     0.4,
		Radius:         0.45,
		HostStart:      [3]float64{0, 0.2, 4},
		ClientStart:    [3]float64{0, 0.2, -4},
	}

	Puck = PuckConfig{
		RestY:           0.1,
		DriftTolerance:  0.04,
		ReconcileAlpha:  0.2,
		SnapDistance:    2.0,
		ImpactThreshold: 1.5,
		HitRadius:       1.2,
		Radius:          0.3,
		Friction:        0.22,
	}

	Match = MatchConfig{
		GoalsToWin: 7,
	}
}
