package flex

// Size is a width/height pair in points.
type Size struct {
	Width, Height float32
}

// Layout holds the computed position and size of a node's border box.
// Left and Top are relative to the parent's border box.
type Layout struct {
	Left, Top     float32
	Width, Height float32
}

// Right returns Left + Width.
func (l Layout) Right() float32 {
	return l.Left + l.Width
}

// Bottom returns Top + Height.
func (l Layout) Bottom() float32 {
	return l.Top + l.Height
}
