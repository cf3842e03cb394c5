package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Vec3 is a world-space position or velocity. y is up, the table lies on xz.
type Vec3 = mgl64.Vec3

// V builds a Vec3.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// PlanarDist is the distance between a and b on the table plane.
func PlanarDist(a, b Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// PlanarSpeed is the magnitude of v on the table plane.
func PlanarSpeed(v Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// RigidBody is everything the match logic reads from or commands to a body.
// wake is forwarded to engines that put resting bodies to sleep.
type RigidBody interface {
	Translation() Vec3
	Linvel() Vec3
	Angvel() Vec3
	SetTranslation(v Vec3, wake bool)
	SetLinvel(v Vec3, wake bool)
	SetAngvel(v Vec3, wake bool)
	// SetKind switches how the world moves the body.
	SetKind(kind BodyKind, wake bool)
	// SetNextKinematicTranslation queues a target the body reaches on the next step.
	SetNextKinematicTranslation(v Vec3)
}

// BodyKind selects how World.Step moves a body.
type BodyKind int

const (
	// Dynamic bodies integrate velocity, feel friction and get pushed by contacts.
	Dynamic BodyKind = iota
	// Kinematic bodies integrate velocity or jump to a queued target, and push dynamics.
	Kinematic
	// PositionBased bodies only move when their translation is written. Their
	// velocity is kept but never integrated, and they take part in no contacts.
	PositionBased
)

// Body is a disc on the table plane.
type Body struct {
	kind   BodyKind
	radius float64

	pos, vel, ang Vec3
	next          Vec3
	hasNext       bool
	awake         bool

	obj *resolv.Object
}

var _ RigidBody = (*Body)(nil)

// NewBody creates a body that is not yet part of any World.
func NewBody(kind BodyKind, pos Vec3, radius float64) *Body {
	return &Body{
		kind:   kind,
		radius: radius,
		pos:    pos,
		awake:  true,
	}
}

func (b *Body) Kind() BodyKind { return b.kind }
func (b *Body) Radius() float64 { return b.radius }
func (b *Body) Awake() bool { return b.awake }

func (b *Body) Translation() Vec3 { return b.pos }
func (b *Body) Linvel() Vec3 { return b.vel }
func (b *Body) Angvel() Vec3 { return b.ang }

func (b *Body) SetTranslation(v Vec3, wake bool) {
	b.pos = v
	b.hasNext = false
	b.wake(wake)
}

func (b *Body) SetLinvel(v Vec3, wake bool) {
	b.vel = v
	b.wake(wake)
}

func (b *Body) SetAngvel(v Vec3, wake bool) {
	b.ang = v
	b.wake(wake)
}

// SetKind changes the body kind and drops any queued kinematic target.
func (b *Body) SetKind(kind BodyKind, wake bool) {
	b.kind = kind
	b.hasNext = false
	b.wake(wake)
}

// SetNextKinematicTranslation is ignored by dynamic bodies.
func (b *Body) SetNextKinematicTranslation(v Vec3) {
	if b.kind != Kinematic {
		return
	}
	b.next = v
	b.hasNext = true
	b.awake = true
}

// PendingTarget returns the queued kinematic target, if any.
func (b *Body) PendingTarget() (Vec3, bool) {
	return b.next, b.hasNext
}

func (b *Body) wake(wake bool) {
	if wake {
		b.awake = true
	}
}
