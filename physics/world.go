package physics

import (
	cfg "github.com/automoto/puckduel/config"
	"github.com/solarlune/resolv"
)

// Resolv tags for broadphase queries
const (
	TagPuck   = "puck"
	TagPaddle = "paddle"
)

// World is a headless table simulation. Discs move on the xz plane and the
// resolv space only narrows down which pairs need an exact circle test.
type World struct {
	space  *resolv.Space
	bodies []*Body
	owners map[*resolv.Object]*Body
}

func NewWorld() *World {
	w := int(2 * cfg.Table.SpaceMarginX * cfg.Table.SpaceScale)
	h := int(2 * cfg.Table.SpaceMarginZ * cfg.Table.SpaceScale)
	return &World{
		space:  resolv.NewSpace(w, h, cfg.Table.CellSize, cfg.Table.CellSize),
		owners: make(map[*resolv.Object]*Body),
	}
}

// Add inserts b into the world under the given resolv tags.
func (w *World) Add(b *Body, tags ...string) {
	x, y, size := w.toSpace(b)
	obj := resolv.NewObject(x, y, size, size, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	w.space.Add(obj)

	b.obj = obj
	w.bodies = append(w.bodies, b)
	w.owners[obj] = b
}

// Remove drops b from the world. Unknown bodies are ignored.
func (w *World) Remove(b *Body) {
	for i, other := range w.bodies {
		if other != b {
			continue
		}
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
		if b.obj != nil {
			w.space.Remove(b.obj)
			delete(w.owners, b.obj)
			b.obj = nil
		}
		return
	}
}

// Len returns the number of bodies in the world.
func (w *World) Len() int { return len(w.bodies) }

// Step advances every body by dt seconds and resolves puck/paddle contacts.
// It returns the number of contacts that changed a puck's velocity.
func (w *World) Step(dt float64) int {
	if dt <= 0 {
		return 0
	}

	for _, b := range w.bodies {
		integrate(b, dt)
		w.sync(b)
	}

	contacts := 0
	for _, b := range w.bodies {
		if b.kind != Dynamic || b.obj == nil || !b.obj.HasTags(TagPuck) {
			continue
		}
		check := b.obj.Check(0, 0, TagPaddle)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(TagPaddle) {
			pad, ok := w.owners[o]
			if !ok {
				continue
			}
			if collideDiscs(b, pad) {
				contacts++
			}
		}
		w.sync(b)
	}
	return contacts
}

func integrate(b *Body, dt float64) {
	if b.kind == PositionBased {
		return
	}
	if b.kind == Kinematic && b.hasNext {
		b.vel = b.next.Sub(b.pos).Mul(1 / dt)
		b.pos = b.next
		b.hasNext = false
		return
	}

	b.pos = b.pos.Add(b.vel.Mul(dt))
	if b.kind != Dynamic {
		return
	}

	sp := PlanarSpeed(b.vel)
	if sp <= 0 {
		return
	}
	loss := cfg.Puck.Friction * sp * dt
	if loss > sp {
		loss = sp
	}
	scale := (sp - loss) / sp
	b.vel = Vec3{b.vel.X() * scale, b.vel.Y(), b.vel.Z() * scale}
}

// collideDiscs pushes puck out of pad along the contact normal and reflects
// the relative velocity when they are approaching.
func collideDiscs(puck, pad *Body) bool {
	dx := puck.pos.X() - pad.pos.X()
	dz := puck.pos.Z() - pad.pos.Z()
	d := PlanarDist(puck.pos, pad.pos)
	minDist := puck.radius + pad.radius
	if d >= minDist || d < 0.001 {
		return false
	}

	nx, nz := dx/d, dz/d
	puck.pos = Vec3{pad.pos.X() + nx*minDist, puck.pos.Y(), pad.pos.Z() + nz*minDist}

	dot := (puck.vel.X()-pad.vel.X())*nx + (puck.vel.Z()-pad.vel.Z())*nz
	if dot >= 0 {
		return false
	}
	puck.vel = Vec3{puck.vel.X() - 2*dot*nx, puck.vel.Y(), puck.vel.Z() - 2*dot*nz}
	puck.awake = true
	return true
}

func (w *World) sync(b *Body) {
	if b.obj == nil {
		return
	}
	b.obj.X, b.obj.Y, _ = w.toSpace(b)
	b.obj.Update()
}

// toSpace converts a body's footprint to resolv coordinates, which must stay
// positive, so the table centre sits at the middle of the space.
func (w *World) toSpace(b *Body) (x, y, size float64) {
	s := cfg.Table.SpaceScale
	size = 2 * b.radius * s
	x = (b.pos.X()+cfg.Table.SpaceMarginX)*s - size/2
	y = (b.pos.Z()+cfg.Table.SpaceMarginZ)*s - size/2
	return x, y, size
}
