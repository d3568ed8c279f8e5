package game

import "math"

// TrackOpponent returns p moved one tick toward the ball. The aim point is the
// ball's y plus noise*OpponentMiss, where noise is clamped to [-1, 1]; the
// paddle center then travels at most OpponentStep toward it. The result is
// always within the court.
func TrackOpponent(ballY float64, p Paddle, noise float64, t Tuning) Paddle {
	noise = math.Max(-1, math.Min(1, noise))
	target := ballY + noise*t.OpponentMiss

	center := p.Center()
	delta := target - center
	if math.Abs(delta) > t.OpponentStep {
		delta = math.Copysign(t.OpponentStep, delta)
	}

	p.CenterOn(center + delta)
	return p
}
