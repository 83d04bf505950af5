package flex

// Edges represents lengths for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// EdgeValues holds a Value per side. Used for margins, which may be auto.
type EdgeValues struct {
	Top, Right, Bottom, Left Value
}

// EdgeValuesAll creates EdgeValues with the same value on all sides.
func EdgeValuesAll(v Value) EdgeValues {
	return EdgeValues{Top: v, Right: v, Bottom: v, Left: v}
}

// resolve converts the values to lengths against the parent width, which is
// what CSS uses for percentages on every side. Auto sides resolve to zero.
func (e EdgeValues) resolve(parentWidth float32) Edges {
	return Edges{
		Top:    e.Top.ResolveOr(parentWidth, 0),
		Right:  e.Right.ResolveOr(parentWidth, 0),
		Bottom: e.Bottom.ResolveOr(parentWidth, 0),
		Left:   e.Left.ResolveOr(parentWidth, 0),
	}
}
