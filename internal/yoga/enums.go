package yoga

import "github.com/woxQAQ/wasm-bundle/internal/flex"

// Integer codes accepted by the style setters. The values are part of the
// module ABI and never change; codes outside a table fall back to its
// default entry.
const (
	FlexDirectionColumn        uint32 = 0
	FlexDirectionColumnReverse uint32 = 1
	FlexDirectionRow           uint32 = 2
	FlexDirectionRowReverse    uint32 = 3
)

const (
	JustifyFlexStart    uint32 = 0
	JustifyCenter       uint32 = 1
	JustifyFlexEnd      uint32 = 2
	JustifySpaceBetween uint32 = 3
	JustifySpaceAround  uint32 = 4
	JustifySpaceEvenly  uint32 = 5
)

// Align codes are shared by align-items, align-self and align-content.
const (
	AlignAuto         uint32 = 0
	AlignFlexStart    uint32 = 1
	AlignCenter       uint32 = 2
	AlignFlexEnd      uint32 = 3
	AlignStretch      uint32 = 4
	AlignBaseline     uint32 = 5
	AlignSpaceBetween uint32 = 6
	AlignSpaceAround  uint32 = 7
)

const (
	WrapNoWrap      uint32 = 0
	WrapWrap        uint32 = 1
	WrapWrapReverse uint32 = 2
)

const (
	DisplayFlex uint32 = 0
	DisplayNone uint32 = 1
)

// Edge codes for padding and margin. Start and End assume left-to-right.
const (
	EdgeLeft       uint32 = 0
	EdgeTop        uint32 = 1
	EdgeRight      uint32 = 2
	EdgeBottom     uint32 = 3
	EdgeStart      uint32 = 4
	EdgeEnd        uint32 = 5
	EdgeHorizontal uint32 = 6
	EdgeVertical   uint32 = 7
	EdgeAll        uint32 = 8
)

// flexDirection maps a direction code. The bool is false for unknown codes.
func flexDirection(code uint32) (flex.FlexDirection, bool) {
	switch code {
	case FlexDirectionColumn:
		return flex.Column, true
	case FlexDirectionColumnReverse:
		return flex.ColumnReverse, true
	case FlexDirectionRow:
		return flex.Row, true
	case FlexDirectionRowReverse:
		return flex.RowReverse, true
	default:
		return flex.Column, false
	}
}

func justifyContent(code uint32) (flex.Justify, bool) {
	switch code {
	case JustifyFlexStart:
		return flex.JustifyStart, true
	case JustifyCenter:
		return flex.JustifyCenter, true
	case JustifyFlexEnd:
		return flex.JustifyEnd, true
	case JustifySpaceBetween:
		return flex.JustifySpaceBetween, true
	case JustifySpaceAround:
		return flex.JustifySpaceAround, true
	case JustifySpaceEvenly:
		return flex.JustifySpaceEvenly, true
	default:
		return flex.JustifyStart, false
	}
}

// alignItems maps codes for align-items and align-self. Auto and the
// space-distributing codes have no item equivalent and become start.
func alignItems(code uint32) (flex.Align, bool) {
	switch code {
	case AlignAuto, AlignFlexStart, AlignSpaceBetween, AlignSpaceAround:
		return flex.AlignStart, true
	case AlignCenter:
		return flex.AlignCenter, true
	case AlignFlexEnd:
		return flex.AlignEnd, true
	case AlignStretch:
		return flex.AlignStretch, true
	case AlignBaseline:
		return flex.AlignBaseline, true
	default:
		return flex.AlignStart, false
	}
}

// alignContent maps codes for align-content. Auto and baseline become start.
func alignContent(code uint32) (flex.AlignContent, bool) {
	switch code {
	case AlignAuto, AlignFlexStart, AlignBaseline:
		return flex.AlignContentStart, true
	case AlignCenter:
		return flex.AlignContentCenter, true
	case AlignFlexEnd:
		return flex.AlignContentEnd, true
	case AlignStretch:
		return flex.AlignContentStretch, true
	case AlignSpaceBetween:
		return flex.AlignContentSpaceBetween, true
	case AlignSpaceAround:
		return flex.AlignContentSpaceAround, true
	default:
		return flex.AlignContentStart, false
	}
}

func flexWrap(code uint32) (flex.FlexWrap, bool) {
	switch code {
	case WrapNoWrap:
		return flex.NoWrap, true
	case WrapWrap:
		return flex.Wrap, true
	case WrapWrapReverse:
		return flex.WrapReverse, true
	default:
		return flex.NoWrap, false
	}
}

func display(code uint32) (flex.Display, bool) {
	switch code {
	case DisplayFlex:
		return flex.DisplayFlex, true
	case DisplayNone:
		return flex.DisplayNone, true
	default:
		return flex.DisplayFlex, false
	}
}

// side is one physical edge of a box.
type side uint8

const (
	sideLeft side = 1 << iota
	sideTop
	sideRight
	sideBottom
)

// edgeSides maps an edge code to the physical sides it writes. Unknown
// codes map to no sides.
func edgeSides(code uint32) side {
	switch code {
	case EdgeLeft, EdgeStart:
		return sideLeft
	case EdgeTop:
		return sideTop
	case EdgeRight, EdgeEnd:
		return sideRight
	case EdgeBottom:
		return sideBottom
	case EdgeHorizontal:
		return sideLeft | sideRight
	case EdgeVertical:
		return sideTop | sideBottom
	case EdgeAll:
		return sideLeft | sideTop | sideRight | sideBottom
	default:
		return 0
	}
}

func setPadding(e *flex.Edges, sides side, v float32) {
	if sides&sideLeft != 0 {
		e.Left = v
	}
	if sides&sideTop != 0 {
		e.Top = v
	}
	if sides&sideRight != 0 {
		e.Right = v
	}
	if sides&sideBottom != 0 {
		e.Bottom = v
	}
}

func setMargin(e *flex.EdgeValues, sides side, v flex.Value) {
	if sides&sideLeft != 0 {
		e.Left = v
	}
	if sides&sideTop != 0 {
		e.Top = v
	}
	if sides&sideRight != 0 {
		e.Right = v
	}
	if sides&sideBottom != 0 {
		e.Bottom = v
	}
}
