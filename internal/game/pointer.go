package game

// Bounds is the rectangle a host draws the arena into, in host coordinates.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Empty reports whether the bounds cannot be mapped onto an arena.
func (b Bounds) Empty() bool {
	return !(b.Width > 0) || !(b.Height > 0)
}

// PointerTarget maps a pointer position in host coordinates to the center the
// human paddle should move to. Only the vertical coordinate matters. ok is
// false when the host bounds are empty.
func PointerTarget(pointerX, pointerY float64, host Bounds, arena Arena, p Paddle) (center float64, ok bool) {
	if host.Empty() {
		return 0, false
	}

	y := (pointerY - host.Y) * arena.Height / host.Height
	p.CenterOn(y)
	return p.Center(), true
}
