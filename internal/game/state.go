package game

// Score counts points per side. Counters only ever grow.
type Score struct {
	Human    int
	Opponent int
}

// Award gives one point to side.
func (s *Score) Award(side Side) {
	if side == SideHuman {
		s.Human++
	} else {
		s.Opponent++
	}
}

// Of returns the points of side.
func (s Score) Of(side Side) int {
	if side == SideHuman {
		return s.Human
	}
	return s.Opponent
}

// State is the complete simulation state. It is a plain value: Step takes
// one and returns the next.
type State struct {
	Arena    Arena
	Tuning   Tuning
	Ball     Ball
	Human    Paddle
	Opponent Paddle
	Score    Score
	Tick     int
	Running  bool
}

// NewState creates a state with the ball centered and moving at the launch
// velocity, both paddles vertically centered and the score zeroed.
func NewState(arena Arena, t Tuning) (State, error) {
	if err := t.Validate(arena); err != nil {
		return State{}, err
	}

	cx, cy := arena.Center()
	ball := NewBall(cx, cy, t.BallRadius)
	ball.VX = t.SpeedX
	ball.VY = t.SpeedY

	return State{
		Arena:    arena,
		Tuning:   t,
		Ball:     ball,
		Human:    NewPaddle(SideHuman, t.PaddleInset, t.PaddleWidth, t.PaddleHeight, arena.Height),
		Opponent: NewPaddle(SideOpponent, arena.Width-t.PaddleInset-t.PaddleWidth, t.PaddleWidth, t.PaddleHeight, arena.Height),
	}, nil
}

// Paddle returns the paddle of side.
func (s *State) Paddle(side Side) *Paddle {
	if side == SideHuman {
		return &s.Human
	}
	return &s.Opponent
}

// Snapshot is the read-only view handed to render sinks.
type Snapshot struct {
	Tick     int
	Arena    Arena
	Ball     Ball
	Human    Paddle
	Opponent Paddle
	Score    Score
}

func (s State) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.Tick,
		Arena:    s.Arena,
		Ball:     s.Ball,
		Human:    s.Human,
		Opponent: s.Opponent,
		Score:    s.Score,
	}
}
