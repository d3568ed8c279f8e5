package game

// Paddle is a vertical bar pinned to one wall. Y is its top edge.
type Paddle struct {
	Side        Side
	X           float64 // Left edge (fixed)
	Y           float64
	Width       float64
	Height      float64
	CourtHeight float64
}

// NewPaddle creates a paddle vertically centered in the court.
func NewPaddle(side Side, x, width, height, courtHeight float64) Paddle {
	p := Paddle{
		Side:        side,
		X:           x,
		Width:       width,
		Height:      height,
		CourtHeight: courtHeight,
	}
	p.CenterOn(courtHeight / 2)
	return p
}

// MaxY is the lowest valid top edge.
func (p Paddle) MaxY() float64 {
	return p.CourtHeight - p.Height
}

// Clamp forces 0 <= Y <= CourtHeight-Height.
func (p *Paddle) Clamp() {
	if p.Y > p.MaxY() {
		p.Y = p.MaxY()
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

// CenterOn moves the paddle so its center is at cy, clamped to the court.
func (p *Paddle) CenterOn(cy float64) {
	p.Y = cy - p.Height/2
	p.Clamp()
}

func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

func (p Paddle) Bottom() float64 {
	return p.Y + p.Height
}

func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// ContainsY reports whether y lies in the paddle span [Y, Y+Height).
func (p Paddle) ContainsY(y float64) bool {
	return y >= p.Y && y < p.Bottom()
}
