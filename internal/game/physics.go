package game

// Step advances s by one logical tick and returns the next state together
// with everything that happened. Collisions resolve in a fixed order: walls,
// then paddles on the wall-corrected position, then scoring. The tick is a
// fixed unit; callers never pass elapsed time.
func Step(s State, rng Rand) (State, []Event) {
	var events []Event

	s.Tick++
	s.Human.Clamp()
	s.Opponent.Clamp()

	s.Ball.Move()

	if s.bounceWalls() {
		events = append(events, Event{Kind: WallBounce})
	}

	if side, ok := s.hitPaddles(rng); ok {
		events = append(events, Event{Kind: PaddleHit, Side: side})
	}

	if scorer, ok := s.checkScore(rng); ok {
		events = append(events, Event{Kind: Scored, Side: scorer})
	}

	return s, events
}

// bounceWalls reflects the ball off the top and bottom walls and puts it back
// on the bound it crossed.
func (s *State) bounceWalls() bool {
	b := &s.Ball
	top := b.Radius
	bottom := s.Arena.Height - b.Radius

	switch {
	case b.Y <= top:
		b.Y = top
		if b.VY < 0 {
			b.BounceVertical(1)
			return true
		}
	case b.Y >= bottom:
		b.Y = bottom
		if b.VY > 0 {
			b.BounceVertical(-1)
			return true
		}
	}
	return false
}

// hitPaddles handles ball-paddle collisions. Only a ball moving toward a
// paddle can hit it, so at most one collision happens per tick.
func (s *State) hitPaddles(rng Rand) (Side, bool) {
	b := &s.Ball
	t := s.Tuning

	h := &s.Human
	if b.VX < 0 && b.X-b.Radius <= h.Right() && b.X+b.Radius >= h.X && h.ContainsY(b.Y) {
		b.X = h.Right() + b.Radius
		b.Deflect(1, t.Growth, t.Spin, rng)
		b.ClampSpeed(t.MaxSpeed)
		return SideHuman, true
	}

	o := &s.Opponent
	if b.VX > 0 && b.X+b.Radius >= o.X && b.X-b.Radius <= o.Right() && o.ContainsY(b.Y) {
		b.X = o.X - b.Radius
		b.Deflect(-1, t.Growth, t.Spin, rng)
		b.ClampSpeed(t.MaxSpeed)
		return SideOpponent, true
	}

	return 0, false
}

// checkScore awards a point once the ball leaves the arena sideways and
// serves it from the center back toward the scorer, so the ball keeps the
// horizontal direction reversed as if it had bounced off the far wall.
func (s *State) checkScore(rng Rand) (Side, bool) {
	var scorer Side
	switch {
	case s.Ball.X < 0:
		scorer = SideOpponent
	case s.Ball.X > s.Arena.Width:
		scorer = SideHuman
	default:
		return 0, false
	}

	s.Score.Award(scorer)
	cx, cy := s.Arena.Center()
	s.Ball.Reset(cx, cy, scorer, s.Tuning.SpeedX, s.Tuning.SpeedY, rng)
	return scorer, true
}
