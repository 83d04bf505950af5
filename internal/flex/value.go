package flex

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitPoint               // Absolute points
	UnitPercent             // Percentage of the parent's content box
)

// Value represents a dimension that can be points, percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns a Value representing an absolute length.
func Points(n float32) Value {
	return Value{Amount: n, Unit: UnitPoint}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value in points against the parent length.
// The second result is false for UnitAuto.
func (v Value) Resolve(parent float32) (float32, bool) {
	switch v.Unit {
	case UnitPoint:
		return v.Amount, true
	case UnitPercent:
		return parent * v.Amount / 100, true
	default:
		return 0, false
	}
}

// ResolveOr is Resolve with a fallback for auto values.
func (v Value) ResolveOr(parent, fallback float32) float32 {
	if n, ok := v.Resolve(parent); ok {
		return n
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
