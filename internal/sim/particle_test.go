package sim

import (
	"math"
	"math/rand"
	"testing"
)

func testLimits() Vec { return Vec{700, 700} }

func TestParticleForceClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &Particle{Pos: Vec{350, 350}, Size: 10}
	limits := testLimits()

	for i := 0; i < 1000; i++ {
		p.ApplyForce(Vec{rng.Float64()*20 - 10, rng.Float64()*20 - 10}, limits)
		p.Update(limits, 2)
		for axis := 0; axis < 2; axis++ {
			if math.Abs(p.Forces[axis]) > 2 {
				t.Fatalf("iteration %d: force[%d] = %f exceeds limit", i, axis, p.Forces[axis])
			}
		}
	}
}

func TestParticleContainment(t *testing.T) {
	limits := testLimits()
	seeds := []int64{1, 2, 3, 42, 99}

	for _, seed := range seeds {
		rng := rand.New(rand.NewSource(seed))
		p := NewParticle(rng, [4]float64{10, 10, 690, 690}, 10, 100, 155)
		size := float64(p.Size)

		for i := 0; i < 5000; i++ {
			if rng.Float64() < 0.3 {
				p.ApplyForce(Vec{rng.Float64()*10 - 5, rng.Float64()*10 - 5}, limits)
			}
			p.Update(limits, 2)
			for axis := 0; axis < 2; axis++ {
				if p.Pos[axis] < size-1e-9 || p.Pos[axis] > limits[axis]-size+1e-9 {
					t.Fatalf("seed %d iteration %d: position[%d] = %f escaped [%f, %f]",
						seed, i, axis, p.Pos[axis], size, limits[axis]-size)
				}
			}
		}
	}
}

func TestParticleApplyForce(t *testing.T) {
	limits := testLimits()

	tests := []struct {
		name       string
		pos        Vec
		forces     Vec
		impulse    Vec
		wantForces Vec
	}{
		{
			// Projected x would cross the left wall, so the x force
			// flips sign before the impulse lands: 1 -> -1 -> 0.
			name:       "knock near left wall flips x",
			pos:        Vec{5, 350},
			forces:     Vec{1, 0},
			impulse:    Vec{1, 0},
			wantForces: Vec{0, 0},
		},
		{
			name:       "knock mid-arena adds plainly",
			pos:        Vec{350, 350},
			forces:     Vec{1, 0},
			impulse:    Vec{1, 0},
			wantForces: Vec{2, 0},
		},
		{
			name:       "knock near right wall flips x",
			pos:        Vec{695, 350},
			forces:     Vec{-1, 0},
			impulse:    Vec{-1, 0},
			wantForces: Vec{0, 0},
		},
		{
			name:       "axes handled independently",
			pos:        Vec{350, 695},
			forces:     Vec{0.5, 1},
			impulse:    Vec{0.5, 1},
			wantForces: Vec{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{Pos: tt.pos, Forces: tt.forces, Size: 10}
			p.ApplyForce(tt.impulse, limits)

			if p.Forces != tt.wantForces {
				t.Errorf("forces = %v, want %v", p.Forces, tt.wantForces)
			}
			if p.Pos != tt.pos {
				t.Errorf("position moved to %v, ApplyForce must not move it", p.Pos)
			}
		})
	}
}

func TestParticleUpdate(t *testing.T) {
	limits := testLimits()

	t.Run("integrates position", func(t *testing.T) {
		p := &Particle{Pos: Vec{350, 350}, Forces: Vec{1.5, -0.5}, Size: 10}
		p.Update(limits, 2)
		if p.Pos != (Vec{351.5, 349.5}) {
			t.Errorf("position = %v, want {351.5, 349.5}", p.Pos)
		}
	})

	t.Run("clamps before reflecting", func(t *testing.T) {
		p := &Particle{Pos: Vec{695, 350}, Forces: Vec{3, 0}, Size: 10}
		p.Update(limits, 2)
		// 3 clamps to 2, 695+2+10 > 700 reflects to -2.
		if p.Forces[0] != -2 {
			t.Errorf("forces[0] = %f, want -2", p.Forces[0])
		}
		if p.Pos[0] != 693 {
			t.Errorf("position[0] = %f, want 693", p.Pos[0])
		}
	})

	t.Run("reflects off the floor", func(t *testing.T) {
		p := &Particle{Pos: Vec{350, 11}, Forces: Vec{0, -2}, Size: 10}
		p.Update(limits, 2)
		if p.Forces[1] != 2 {
			t.Errorf("forces[1] = %f, want 2", p.Forces[1])
		}
		if p.Pos[1] != 13 {
			t.Errorf("position[1] = %f, want 13", p.Pos[1])
		}
	})
}

func TestNewParticleSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	zone := [4]float64{10, 10, 690, 690}

	for i := 0; i < 100; i++ {
		p := NewParticle(rng, zone, 10, 100, 155)
		if p.Pos[0] < 10 || p.Pos[0] > 690 || p.Pos[1] < 10 || p.Pos[1] > 690 {
			t.Fatalf("spawned outside zone: %v", p.Pos)
		}
		for _, ch := range []uint8{p.Color.R, p.Color.G, p.Color.B} {
			if ch < 100 {
				t.Fatalf("color channel %d below minimum", ch)
			}
		}
		if p.Forces != (Vec{}) {
			t.Fatalf("spawned with nonzero force %v", p.Forces)
		}
	}
}
