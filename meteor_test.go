package asteroids

import (
	"math"
	"testing"
)

func TestMeteorSplit(t *testing.T) {
	tests := []struct {
		size  MeteorSize
		next  MeteorSize
		split bool
	}{
		{MeteorBig, MeteorMedium, true},
		{MeteorMedium, MeteorSmall, true},
		{MeteorSmall, MeteorSmall, false},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			te := newTestEnv(t)
			w := newTestWorld(t)
			at := Vector2{X: 200, Y: 150}
			m := NewMeteor(te.Env, tt.size, at)

			action := m.Destroy()
			if m.Body().Alive() {
				t.Fatal("meteor alive after Destroy")
			}
			if !tt.split {
				if action != nil {
					t.Fatal("small meteor split")
				}
				return
			}
			if action == nil {
				t.Fatal("no fragments")
			}

			action(w)
			if n := w.Pending(); n < 2 || n > 3 {
				t.Fatalf("fragments = %d, want 2 or 3", n)
			}
			for _, e := range w.pending {
				frag := e.(*Meteor)
				if frag.Size() != tt.next {
					t.Errorf("fragment size = %v, want %v", frag.Size(), tt.next)
				}
				if frag.Body().Position != at {
					t.Errorf("fragment at %v, want %v", frag.Body().Position, at)
				}
			}
		})
	}
}

func TestMeteorDestroyIsIdempotent(t *testing.T) {
	te := newTestEnv(t)
	m := NewMeteor(te.Env, MeteorBig, Vector2{X: 10, Y: 10})

	if m.Destroy() == nil {
		t.Fatal("first Destroy spawned nothing")
	}
	if m.Destroy() != nil {
		t.Fatal("second Destroy spawned fragments again")
	}
	if len(te.audio.played) != 1 {
		t.Fatalf("explosions played = %d, want 1", len(te.audio.played))
	}
}

func TestMeteorSplitCountCoversRange(t *testing.T) {
	te := newTestEnv(t)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		w := newTestWorld(t)
		NewMeteor(te.Env, MeteorBig, Vector2{}).Destroy()(w)
		seen[w.Pending()] = true
	}
	if len(seen) != 2 || !seen[2] || !seen[3] {
		t.Fatalf("split counts seen = %v, want exactly 2 and 3", seen)
	}
}

func TestMeteorDrift(t *testing.T) {
	te := newTestEnv(t)
	m := NewMeteor(te.Env, MeteorBig, Vector2{X: 100, Y: 100})

	if speed := m.Body().Impulse.Length(); math.Abs(speed-30) > 1e-9 {
		t.Fatalf("speed = %v, want 30", speed)
	}
	m.Update(1)
	if d := m.Body().Position.Distance(Vector2{X: 100, Y: 100}); math.Abs(d-30) > 1e-9 {
		t.Fatalf("moved %v in one second, want 30", d)
	}
}

func TestMeteorCollidesOnlyWithPlayerShots(t *testing.T) {
	te := newTestEnv(t)
	at := Vector2{X: 100, Y: 100}
	m := NewMeteor(te.Env, MeteorBig, at)

	if !m.Collides(NewShot(te.Env, 0, at, OriginPlayer)) {
		t.Error("meteor ignores a player shot")
	}
	if m.Collides(NewShot(te.Env, 0, at, OriginEnemy)) {
		t.Error("meteor collides with an enemy shot")
	}
	if m.Collides(NewPlayer(te.Env, NewLives(3))) {
		t.Error("meteor collides with the player")
	}
	if m.Collides(NewMeteor(te.Env, MeteorSmall, at)) {
		t.Error("meteors collide with each other")
	}
	if m.Collides(NewShot(te.Env, 0, Vector2{X: 500, Y: 500}, OriginPlayer)) {
		t.Error("meteor collides with a distant shot")
	}
}

func TestMeteorScores(t *testing.T) {
	te := newTestEnv(t)
	for size, want := range map[MeteorSize]uint32{MeteorBig: 10, MeteorMedium: 5, MeteorSmall: 1} {
		if got := NewMeteor(te.Env, size, Vector2{}).Kind(); got != MeteorKind(want) {
			t.Errorf("%v kind = %v, want %v", size, got, MeteorKind(want))
		}
	}
}

// Destroying a big meteor and then every fragment scores big + 5 per medium
// + 1 per small.
func TestMeteorChainScore(t *testing.T) {
	te := newTestEnv(t)
	w := newTestWorld(t)
	w.Add(NewMeteor(te.Env, MeteorBig, Vector2{X: 400, Y: 300}))
	w.Update(0)

	var total uint32
	var mediums, smalls int
	for round := 0; round < 3; round++ {
		for _, e := range w.Entities() {
			m := e.(*Meteor)
			switch m.Size() {
			case MeteorMedium:
				mediums++
			case MeteorSmall:
				smalls++
			}
			if action := m.Destroy(); action != nil {
				action(w)
			}
		}
		total += w.Update(0)
	}

	if w.Size() != 0 {
		t.Fatalf("meteors left = %d, want 0", w.Size())
	}
	if mediums < 2 || mediums > 3 {
		t.Fatalf("mediums = %d, want 2 or 3", mediums)
	}
	if smalls < 2*mediums || smalls > 3*mediums {
		t.Fatalf("smalls = %d for %d mediums", smalls, mediums)
	}
	if want := uint32(10 + 5*mediums + smalls); total != want {
		t.Fatalf("total = %d, want %d", total, want)
	}
}
