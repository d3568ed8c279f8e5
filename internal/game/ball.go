package game

import "math"

// Rand is the randomness the simulation consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

func NewBall(x, y, radius float64) Ball {
	return Ball{X: x, Y: y, Radius: radius}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical sends the ball away from a horizontal wall. dir is +1 to
// head down, -1 to head up.
func (b *Ball) BounceVertical(dir float64) {
	b.VY = dir * math.Abs(b.VY)
}

// Deflect sends the ball horizontally in dir, growing its horizontal speed by
// growth and nudging its vertical speed by up to spin either way.
func (b *Ball) Deflect(dir, growth, spin float64, rng Rand) {
	b.VX = dir * math.Abs(b.VX) * growth
	if spin > 0 && rng != nil {
		b.VY += (rng.Float64()*2 - 1) * spin
	}
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// ClampSpeed scales the velocity down so its magnitude does not exceed limit.
func (b *Ball) ClampSpeed(limit float64) {
	speed := b.Speed()
	if speed <= limit || speed == 0 {
		return
	}
	scale := limit / speed
	b.VX *= scale
	b.VY *= scale
}

// Reset places ball at center and launches it toward the given side with the
// base speed; the vertical direction is a coin flip.
func (b *Ball) Reset(centerX, centerY float64, toward Side, speedX, speedY float64, rng Rand) {
	b.X = centerX
	b.Y = centerY
	b.VX = toward.Dir() * math.Abs(speedX)
	b.VY = math.Abs(speedY)
	if rng != nil && rng.Float64() < 0.5 {
		b.VY = -b.VY
	}
}
