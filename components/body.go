package components

// Body holds the fixed rectangle dimensions of a particle.
type Body struct {
	Width  float64
	Height float64
}

// Area returns Width*Height.
func (b Body) Area() float64 {
	return b.Width * b.Height
}
