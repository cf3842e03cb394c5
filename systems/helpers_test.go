package systems

import (
	"math"
	"testing"

	"github.com/automoto/puckduel/components"
	cfg "github.com/automoto/puckduel/config"
	"github.com/automoto/puckduel/physics"
	"github.com/automoto/puckduel/systems/factory"
	"github.com/automoto/puckduel/tags"
	"github.com/yohamta/donburi"
)

// fakeBody records every command it receives.
type fakeBody struct {
	pos, vel, ang physics.Vec3
	next          *physics.Vec3
	kind          physics.BodyKind

	setTranslation int
	setLinvel      int
	setAngvel      int
}

func (b *fakeBody) Translation() physics.Vec3 { return b.pos }
func (b *fakeBody) Linvel() physics.Vec3 { return b.vel }
func (b *fakeBody) Angvel() physics.Vec3 { return b.ang }

func (b *fakeBody) SetTranslation(v physics.Vec3, _ bool) {
	b.pos = v
	b.setTranslation++
}

func (b *fakeBody) SetLinvel(v physics.Vec3, _ bool) {
	b.vel = v
	b.setLinvel++
}

func (b *fakeBody) SetAngvel(v physics.Vec3, _ bool) {
	b.ang = v
	b.setAngvel++
}

func (b *fakeBody) SetKind(kind physics.BodyKind, _ bool) { b.kind = kind }

func (b *fakeBody) SetNextKinematicTranslation(v physics.Vec3) {
	b.next = &v
}

func newTestWorld(role cfg.Role) donburi.World {
	w := donburi.NewWorld()
	factory.CreateTable(w, nil, role, cfg.BotDifficultyNormal)
	return w
}

type firstFinder interface {
	First(w donburi.World) (*donburi.Entry, bool)
}

func setBody(t *testing.T, w donburi.World, tag firstFinder, body physics.RigidBody) {
	t.Helper()
	entry, ok := tag.First(w)
	if !ok {
		t.Fatalf("no entity for %T", tag)
	}
	components.Body.Get(entry).Body = body
}

func putPuck(t *testing.T, w donburi.World, pos, vel physics.Vec3) *fakeBody {
	t.Helper()
	fb := &fakeBody{pos: pos, vel: vel}
	setBody(t, w, tags.Puck, fb)
	return fb
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func approxVec(a, b physics.Vec3) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y()) && approx(a.Z(), b.Z())
}

var (
	tagHostPaddle   firstFinder = tags.HostPaddle
	tagClientPaddle firstFinder = tags.ClientPaddle
)
