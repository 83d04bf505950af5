package flex

// Display controls whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone         // Node and its subtree get a zero layout
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out left-to-right
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Children laid out right-to-left
	ColumnReverse                      // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether children run from main-end to main-start.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls whether children may break onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
// AlignAuto on AlignItems means stretch; on AlignSelf it defers to the
// parent's AlignItems.
type Align uint8

const (
	AlignAuto Align = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
)

// AlignContent specifies how lines are distributed on the cross axis of a
// wrapping container. AlignContentAuto behaves as stretch.
type AlignContent uint8

const (
	AlignContentAuto AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// Dimensions pairs a width and a height value.
type Dimensions struct {
	Width  Value
	Height Value
}

// Style contains all layout properties for a node.
type Style struct {
	Display Display

	// Flex container properties
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Gap            float32 // Space between children and between lines

	// Flex item properties
	AlignSelf  Align
	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Value

	// Sizing
	Size    Dimensions
	MinSize Dimensions // Auto means no minimum
	MaxSize Dimensions // Auto means no maximum

	// Spacing
	Padding Edges
	Margin  EdgeValues
}

// DefaultStyle returns the style a fresh node starts with.
func DefaultStyle() Style {
	return Style{
		Display:       DisplayFlex,
		FlexDirection: Row,
		FlexShrink:    1,
		FlexBasis:     Auto(),
		Size:          Dimensions{Width: Auto(), Height: Auto()},
		MinSize:       Dimensions{Width: Auto(), Height: Auto()},
		MaxSize:       Dimensions{Width: Auto(), Height: Auto()},
		Margin:        EdgeValues{Top: Points(0), Right: Points(0), Bottom: Points(0), Left: Points(0)},
	}
}
