package physics

import (
	"math/rand/v2"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Particle volume in world units
const (
	DefaultParticleBudget = 60

	particleHalfWidth  = 20.0
	particleHalfHeight = 50.0
	particleCeiling    = 60.0
	particleFloor      = -60.0
)

// Particle is one flow mote. Positions are world space.
type Particle struct {
	Position geometry.Vector3
	Velocity geometry.Vector3
}

// Particles rise through a narrow column and recycle at the top
type Particles struct {
	Items []Particle
	rng   *rand.Rand
}

// NewParticles creates an empty system drawing from a seeded source
func NewParticles(seed uint64) *Particles {
	return &Particles{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed replaces all particles with n fresh ones. n <= 0 clears the system.
func (p *Particles) Seed(n int) {
	p.Items = p.Items[:0]
	for i := 0; i < n; i++ {
		p.Items = append(p.Items, Particle{
			Position: geometry.Vector3{
				X: p.spread(particleHalfWidth),
				Y: p.spread(particleHalfHeight),
				Z: p.spread(particleHalfWidth),
			},
			Velocity: geometry.Vector3{
				X: p.spread(0.25),
				Y: 1 + p.rng.Float64()*2,
				Z: p.spread(0.25),
			},
		})
	}
}

// Step moves every particle one frame, wrapping those above the ceiling
func (p *Particles) Step() {
	for i := range p.Items {
		it := &p.Items[i]
		it.Position = it.Position.Add(it.Velocity)
		if it.Position.Y > particleCeiling {
			it.Position.Y = particleFloor
			it.Position.X = p.spread(particleHalfWidth)
			it.Position.Z = p.spread(particleHalfWidth)
		}
	}
}

// Len returns the number of live particles
func (p *Particles) Len() int {
	return len(p.Items)
}

func (p *Particles) spread(half float64) float64 {
	return (p.rng.Float64()*2 - 1) * half
}
