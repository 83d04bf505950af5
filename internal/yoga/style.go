package yoga

import "github.com/woxQAQ/wasm-bundle/internal/flex"

// update fetches the node's full style, applies mutate to the copy and
// reinstalls it, so a setter never leaves a partially written style.
// mutate returns false when its input was outside the accepted codes.
func (n *Node) update(op string, mutate func(s *flex.Style) bool) {
	if !n.live() {
		return
	}
	style, err := n.ctx.tree.Style(n.id)
	if err != nil {
		n.record(op, err)
		return
	}
	known := mutate(&style)
	n.record(op, n.ctx.tree.SetStyle(n.id, style))
	if !known && n.lastErr == ErrNone {
		n.lastErr = ErrUnknownValue
	}
}

func (n *Node) SetWidth(width float32) {
	n.update("setWidth", func(s *flex.Style) bool {
		s.Size.Width = flex.Points(width)
		return true
	})
}

func (n *Node) SetHeight(height float32) {
	n.update("setHeight", func(s *flex.Style) bool {
		s.Size.Height = flex.Points(height)
		return true
	})
}

// SetWidthPercent sizes the node relative to its parent's content box.
func (n *Node) SetWidthPercent(percent float32) {
	n.update("setWidthPercent", func(s *flex.Style) bool {
		s.Size.Width = flex.Percent(percent)
		return true
	})
}

func (n *Node) SetHeightPercent(percent float32) {
	n.update("setHeightPercent", func(s *flex.Style) bool {
		s.Size.Height = flex.Percent(percent)
		return true
	})
}

func (n *Node) SetWidthAuto() {
	n.update("setWidthAuto", func(s *flex.Style) bool {
		s.Size.Width = flex.Auto()
		return true
	})
}

func (n *Node) SetHeightAuto() {
	n.update("setHeightAuto", func(s *flex.Style) bool {
		s.Size.Height = flex.Auto()
		return true
	})
}

func (n *Node) SetMinWidth(width float32) {
	n.update("setMinWidth", func(s *flex.Style) bool {
		s.MinSize.Width = flex.Points(width)
		return true
	})
}

func (n *Node) SetMinHeight(height float32) {
	n.update("setMinHeight", func(s *flex.Style) bool {
		s.MinSize.Height = flex.Points(height)
		return true
	})
}

func (n *Node) SetMaxWidth(width float32) {
	n.update("setMaxWidth", func(s *flex.Style) bool {
		s.MaxSize.Width = flex.Points(width)
		return true
	})
}

func (n *Node) SetMaxHeight(height float32) {
	n.update("setMaxHeight", func(s *flex.Style) bool {
		s.MaxSize.Height = flex.Points(height)
		return true
	})
}

// SetFlexDirection takes a FlexDirection code; unknown codes select column.
func (n *Node) SetFlexDirection(code uint32) {
	n.update("setFlexDirection", func(s *flex.Style) bool {
		var ok bool
		s.FlexDirection, ok = flexDirection(code)
		return ok
	})
}

// SetJustifyContent takes a Justify code; unknown codes select flex-start.
func (n *Node) SetJustifyContent(code uint32) {
	n.update("setJustifyContent", func(s *flex.Style) bool {
		var ok bool
		s.JustifyContent, ok = justifyContent(code)
		return ok
	})
}

// SetAlignItems takes an Align code; unknown codes select flex-start.
func (n *Node) SetAlignItems(code uint32) {
	n.update("setAlignItems", func(s *flex.Style) bool {
		var ok bool
		s.AlignItems, ok = alignItems(code)
		return ok
	})
}

// SetAlignSelf uses the same codes as SetAlignItems.
func (n *Node) SetAlignSelf(code uint32) {
	n.update("setAlignSelf", func(s *flex.Style) bool {
		var ok bool
		s.AlignSelf, ok = alignItems(code)
		return ok
	})
}

// SetAlignContent takes an Align code; unknown codes select flex-start.
func (n *Node) SetAlignContent(code uint32) {
	n.update("setAlignContent", func(s *flex.Style) bool {
		var ok bool
		s.AlignContent, ok = alignContent(code)
		return ok
	})
}

// SetFlexWrap takes a Wrap code; unknown codes select no-wrap.
func (n *Node) SetFlexWrap(code uint32) {
	n.update("setFlexWrap", func(s *flex.Style) bool {
		var ok bool
		s.FlexWrap, ok = flexWrap(code)
		return ok
	})
}

// SetDisplay takes a Display code; unknown codes select flex.
func (n *Node) SetDisplay(code uint32) {
	n.update("setDisplay", func(s *flex.Style) bool {
		var ok bool
		s.Display, ok = display(code)
		return ok
	})
}

// SetFlex is the flex shorthand: grow = flex, shrink = 1, basis = 0.
func (n *Node) SetFlex(flexValue float32) {
	n.update("setFlex", func(s *flex.Style) bool {
		s.FlexGrow = flexValue
		s.FlexShrink = 1
		s.FlexBasis = flex.Points(0)
		return true
	})
}

func (n *Node) SetFlexGrow(grow float32) {
	n.update("setFlexGrow", func(s *flex.Style) bool {
		s.FlexGrow = grow
		return true
	})
}

func (n *Node) SetFlexShrink(shrink float32) {
	n.update("setFlexShrink", func(s *flex.Style) bool {
		s.FlexShrink = shrink
		return true
	})
}

func (n *Node) SetFlexBasis(basis float32) {
	n.update("setFlexBasis", func(s *flex.Style) bool {
		s.FlexBasis = flex.Points(basis)
		return true
	})
}

func (n *Node) SetFlexBasisPercent(percent float32) {
	n.update("setFlexBasisPercent", func(s *flex.Style) bool {
		s.FlexBasis = flex.Percent(percent)
		return true
	})
}

func (n *Node) SetFlexBasisAuto() {
	n.update("setFlexBasisAuto", func(s *flex.Style) bool {
		s.FlexBasis = flex.Auto()
		return true
	})
}

// SetPadding sets the padding of the sides selected by an Edge code.
// Unknown edges leave the style untouched.
func (n *Node) SetPadding(edge uint32, padding float32) {
	n.update("setPadding", func(s *flex.Style) bool {
		sides := edgeSides(edge)
		setPadding(&s.Padding, sides, padding)
		return sides != 0
	})
}

// SetMargin sets the margin of the sides selected by an Edge code.
// Unknown edges leave the style untouched.
func (n *Node) SetMargin(edge uint32, margin float32) {
	n.setMargin("setMargin", edge, flex.Points(margin))
}

func (n *Node) SetMarginPercent(edge uint32, percent float32) {
	n.setMargin("setMarginPercent", edge, flex.Percent(percent))
}

// SetMarginAuto makes the selected margins absorb free space.
func (n *Node) SetMarginAuto(edge uint32) {
	n.setMargin("setMarginAuto", edge, flex.Auto())
}

func (n *Node) setMargin(op string, edge uint32, v flex.Value) {
	n.update(op, func(s *flex.Style) bool {
		sides := edgeSides(edge)
		setMargin(&s.Margin, sides, v)
		return sides != 0
	})
}
