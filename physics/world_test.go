package physics

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestStepIntegratesWithFriction(t *testing.T) {
	w := NewWorld()
	puck := NewBody(Dynamic, V(0, 0.1, 0), 0.3)
	puck.SetLinvel(V(2, 0, 0), true)
	w.Add(puck, TagPuck)

	w.Step(0.5)

	if got := puck.Translation().X(); !near(got, 1) {
		t.Fatalf("x after step = %f, want 1", got)
	}
	// loss = 0.22 * 2 * 0.5
	if got := puck.Linvel().X(); !near(got, 2-0.22) {
		t.Fatalf("vx after step = %f, want %f", got, 2-0.22)
	}
}

func TestFrictionNeverReversesVelocity(t *testing.T) {
	w := NewWorld()
	puck := NewBody(Dynamic, V(0, 0.1, 0), 0.3)
	puck.SetLinvel(V(0, 0, 1), true)
	w.Add(puck, TagPuck)

	w.Step(5)

	if got := puck.Linvel().Z(); got != 0 {
		t.Fatalf("vz = %f, want 0", got)
	}
}

func TestKinematicTargetIsReachedInOneStep(t *testing.T) {
	w := NewWorld()
	pad := NewBody(Kinematic, V(0, 0.2, -4), 0.45)
	w.Add(pad, TagPaddle)

	pad.SetNextKinematicTranslation(V(1, 0.2, -3))
	w.Step(0.1)

	if got := pad.Translation(); got != V(1, 0.2, -3) {
		t.Fatalf("translation = %v, want (1, 0.2, -3)", got)
	}
	if got := pad.Linvel().X(); !near(got, 10) {
		t.Fatalf("derived vx = %f, want 10", got)
	}
	if _, pending := pad.PendingTarget(); pending {
		t.Fatalf("target still pending after step")
	}
}

func TestDynamicBodyIgnoresKinematicTarget(t *testing.T) {
	puck := NewBody(Dynamic, V(0, 0.1, 0), 0.3)
	puck.SetNextKinematicTranslation(V(1, 0.1, 1))
	if _, pending := puck.PendingTarget(); pending {
		t.Fatalf("dynamic body accepted a kinematic target")
	}
}

func TestPuckBouncesOffPaddle(t *testing.T) {
	w := NewWorld()
	puck := NewBody(Dynamic, V(0, 0.1, 1), 0.3)
	puck.SetLinvel(V(0, 0, 5), true)
	pad := NewBody(Kinematic, V(0, 0.2, 1.5), 0.45)
	w.Add(puck, TagPuck)
	w.Add(pad, TagPaddle)

	if n := w.Step(1.0 / 60); n != 1 {
		t.Fatalf("contacts = %d, want 1", n)
	}
	if vz := puck.Linvel().Z(); vz >= 0 {
		t.Fatalf("vz after bounce = %f, want negative", vz)
	}
	if d := PlanarDist(puck.Translation(), pad.Translation()); d < 0.75-1e-9 {
		t.Fatalf("puck still overlaps paddle: distance %f", d)
	}
}

func TestPositionBasedBodyHoldsStill(t *testing.T) {
	w := NewWorld()
	puck := NewBody(Dynamic, V(0, 0.1, 1), 0.3)
	puck.SetLinvel(V(0, 0, 5), true)
	pad := NewBody(Kinematic, V(0, 0.2, 1.5), 0.45)
	w.Add(puck, TagPuck)
	w.Add(pad, TagPaddle)

	puck.SetKind(PositionBased, true)
	if n := w.Step(1.0 / 60); n != 0 {
		t.Fatalf("contacts = %d, want none", n)
	}
	if got := puck.Translation(); got != V(0, 0.1, 1) {
		t.Fatalf("translation = %v, want unchanged", got)
	}
	if got := puck.Linvel(); got != V(0, 0, 5) {
		t.Fatalf("velocity = %v, want kept", got)
	}

	puck.SetKind(Dynamic, true)
	w.Step(0.1)
	if got := puck.Translation().Z(); got <= 1 {
		t.Fatalf("z = %f after switching back, want moving", got)
	}
}

func TestRemove(t *testing.T) {
	w := NewWorld()
	a := NewBody(Dynamic, V(0, 0.1, 0), 0.3)
	b := NewBody(Kinematic, V(0, 0.2, 4), 0.45)
	w.Add(a, TagPuck)
	w.Add(b, TagPaddle)

	w.Remove(b)
	w.Remove(b)

	if w.Len() != 1 {
		t.Fatalf("len = %d, want 1", w.Len())
	}
}
