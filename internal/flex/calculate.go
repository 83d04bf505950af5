package flex

import "math"

var inf = float32(math.Inf(1))

// ComputeLayout performs layout calculation on the subtree rooted at root.
// The root and all descendants get their Layout populated.
// Only dirty nodes, or nodes whose allotted size changed, are recalculated.
//
// available is the space the root is laid out in. An auto-sized root fills
// it (minus its own margin).
func (t *Tree) ComputeLayout(root NodeID, available Size) error {
	n, err := t.get(root)
	if err != nil {
		return err
	}
	if n.style.Display == DisplayNone {
		t.hide(root)
		t.storeLayout(root, 0, 0)
		return nil
	}

	// For the root node, resolve its width/height constraints against
	// the available space. Child nodes instead receive their size from
	// the parent's flex calculations.
	style := n.style
	margin := style.Margin.resolve(available.Width)
	width := style.Size.Width.ResolveOr(available.Width, available.Width-margin.Horizontal())
	height := style.Size.Height.ResolveOr(available.Height, available.Height-margin.Vertical())
	width = clamp(width,
		style.MinSize.Width.ResolveOr(available.Width, 0),
		style.MaxSize.Width.ResolveOr(available.Width, inf))
	height = clamp(height,
		style.MinSize.Height.ResolveOr(available.Height, 0),
		style.MaxSize.Height.ResolveOr(available.Height, inf))
	width = max(width, style.Padding.Horizontal())
	height = max(height, style.Padding.Vertical())

	n.unrounded = Layout{Left: margin.Left, Top: margin.Top, Width: width, Height: height}
	t.layoutNode(root, width, height)
	t.storeLayout(root, 0, 0)
	return nil
}

// layoutNode lays out the children of a node whose border box size has
// already been decided by its parent.
func (t *Tree) layoutNode(id NodeID, width, height float32) {
	n := t.nodes[id]
	size := Size{Width: width, Height: height}

	// Dirty propagates up, so a clean node guarantees a clean subtree
	if !n.dirty && n.computed && n.laidOut == size {
		return
	}

	if len(n.children) > 0 {
		t.layoutChildren(n, width, height)
	}

	n.laidOut = size
	n.computed = true
	n.dirty = false
}

// hide gives a display:none subtree a zero layout and marks it clean.
func (t *Tree) hide(id NodeID) {
	n := t.nodes[id]
	n.unrounded = Layout{}
	n.laidOut = Size{}
	n.computed = true
	n.dirty = false
	for _, c := range n.children {
		t.hide(c)
	}
}

// storeLayout publishes the unrounded layouts of a subtree, rounding them
// when enabled. Rounding works on absolute coordinates so that adjacent
// edges land on the same point: sizes are the difference of the rounded
// far and near edges.
func (t *Tree) storeLayout(id NodeID, parentX, parentY float32) {
	n := t.nodes[id]
	u := n.unrounded
	absX := parentX + u.Left
	absY := parentY + u.Top

	if t.rounding {
		n.layout = Layout{
			Left:   round(u.Left),
			Top:    round(u.Top),
			Width:  round(absX+u.Width) - round(absX),
			Height: round(absY+u.Height) - round(absY),
		}
	} else {
		n.layout = u
	}

	for _, c := range n.children {
		t.storeLayout(c, absX, absY)
	}
}

// contentSize returns the border box a node would take if sized by its own
// style and its content alone. Percentages resolve against the given parent
// content box.
func (t *Tree) contentSize(id NodeID, parentWidth, parentHeight float32) Size {
	n := t.nodes[id]
	s := n.style
	pad := s.Padding

	width, widthOK := s.Size.Width.Resolve(parentWidth)
	height, heightOK := s.Size.Height.Resolve(parentHeight)

	if !widthOK || !heightOK {
		innerW := parentWidth - pad.Horizontal()
		if widthOK {
			innerW = width - pad.Horizontal()
		}
		innerH := parentHeight - pad.Vertical()
		if heightOK {
			innerH = height - pad.Vertical()
		}
		innerW = max(innerW, 0)
		innerH = max(innerH, 0)

		isRow := s.FlexDirection.IsRow()
		var contentW, contentH float32
		count := 0
		for _, c := range n.children {
			child := t.nodes[c]
			if child.style.Display == DisplayNone {
				continue
			}
			cs := t.contentSize(c, innerW, innerH)
			if basis, ok := child.style.FlexBasis.Resolve(mainOf(isRow, innerW, innerH)); ok {
				if isRow {
					cs.Width = max(basis, child.style.Padding.Horizontal())
				} else {
					cs.Height = max(basis, child.style.Padding.Vertical())
				}
			}
			m := child.style.Margin.resolve(innerW)
			outerW := cs.Width + m.Horizontal()
			outerH := cs.Height + m.Vertical()
			if isRow {
				contentW += outerW
				contentH = max(contentH, outerH)
			} else {
				contentW = max(contentW, outerW)
				contentH += outerH
			}
			count++
		}

		// Add gap between children (not before first)
		if count > 1 {
			gaps := s.Gap * float32(count-1)
			if isRow {
				contentW += gaps
			} else {
				contentH += gaps
			}
		}

		if !widthOK {
			width = contentW + pad.Horizontal()
		}
		if !heightOK {
			height = contentH + pad.Vertical()
		}
	}

	width = clamp(width,
		s.MinSize.Width.ResolveOr(parentWidth, 0),
		s.MaxSize.Width.ResolveOr(parentWidth, inf))
	height = clamp(height,
		s.MinSize.Height.ResolveOr(parentHeight, 0),
		s.MaxSize.Height.ResolveOr(parentHeight, inf))

	return Size{
		Width:  max(width, pad.Horizontal()),
		Height: max(height, pad.Vertical()),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	if v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func mainOf(isRow bool, width, height float32) float32 {
	if isRow {
		return width
	}
	return height
}
