package flex

// epsilon absorbs float32 noise when comparing accumulated lengths.
const epsilon = 1e-3

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
//
// Margins are logical: for reversed directions the physical sides are
// swapped so that main-start is always where placement begins.
type flexItem struct {
	id    NodeID
	style *Style
	align Align

	marginMainStart, marginMainEnd   float32
	marginCrossStart, marginCrossEnd float32
	autoMainStart, autoMainEnd       bool
	autoCrossStart, autoCrossEnd     bool

	baseSize float32
	hypoMain float32
	minMain  float32
	maxMain  float32
	minCross float32
	maxCross float32

	grow   float32
	shrink float32

	mainSize  float32
	crossSize float32
	mainPos   float32
	crossPos  float32

	frozen    bool
	violation float32
}

func (it *flexItem) mainMargins() float32 {
	return it.marginMainStart + it.marginMainEnd
}

func (it *flexItem) crossMargins() float32 {
	return it.marginCrossStart + it.marginCrossEnd
}

// flexLine is a run of items sharing one cross-axis band.
type flexLine struct {
	items     []flexItem
	crossSize float32
	crossPos  float32
}

// layoutChildren arranges the children of a node whose border box is
// width x height. This implements the core flexbox algorithm.
func (t *Tree) layoutChildren(n *node, width, height float32) {
	style := n.style
	pad := style.Padding
	innerW := max(0, width-pad.Horizontal())
	innerH := max(0, height-pad.Vertical())

	isRow := style.FlexDirection.IsRow()

	// Determine main/cross axis dimensions
	mainSize, crossSize := innerW, innerH
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: Compute base sizes and hypothetical main sizes
	items := make([]flexItem, 0, len(n.children))
	for _, c := range n.children {
		child := t.nodes[c]
		if child.style.Display == DisplayNone {
			t.hide(c)
			continue
		}
		items = append(items, t.newFlexItem(c, child, &style, innerW, innerH))
	}
	if len(items) == 0 {
		return
	}

	// Phase 2: Break items into lines
	lines := collectLines(items, style.FlexWrap, mainSize, style.Gap)

	// Phase 3: Distribute free space on each line
	for i := range lines {
		lines[i].resolveFlexibleLengths(mainSize, style.Gap)
	}

	// Phase 4: Hypothetical cross sizes and line cross sizes
	for i := range lines {
		line := &lines[i]
		for j := range line.items {
			it := &line.items[j]
			it.crossSize = t.hypotheticalCross(it, isRow, innerW, innerH)
			line.crossSize = max(line.crossSize, it.crossSize+it.crossMargins())
		}
	}

	// Phase 5: Position lines (align-content)
	if style.FlexWrap == NoWrap {
		lines[0].crossSize = crossSize
		lines[0].crossPos = 0
	} else {
		distributeLines(lines, style.AlignContent, crossSize, style.Gap)
	}

	// Phase 6: Cross-axis stretching and alignment
	for i := range lines {
		lines[i].alignItems(isRow)
	}

	// Phase 7: Position children along main axis (justify)
	for i := range lines {
		lines[i].justify(style.JustifyContent, mainSize, style.Gap)
	}

	// Phase 8: Convert to layouts and recurse
	reverse := style.FlexDirection.IsReverse()
	for i := range lines {
		for j := range lines[i].items {
			it := &lines[i].items[j]
			mainPos := it.mainPos
			if reverse {
				mainPos = mainSize - mainPos - it.mainSize
			}
			crossPos := it.crossPos
			if style.FlexWrap == WrapReverse {
				crossPos = crossSize - crossPos - it.crossSize
			}

			var l Layout
			if isRow {
				l = Layout{Left: pad.Left + mainPos, Top: pad.Top + crossPos, Width: it.mainSize, Height: it.crossSize}
			} else {
				l = Layout{Left: pad.Left + crossPos, Top: pad.Top + mainPos, Width: it.crossSize, Height: it.mainSize}
			}

			t.nodes[it.id].unrounded = l
			t.layoutNode(it.id, l.Width, l.Height)
		}
	}
}

// newFlexItem resolves margins, constraints and the flex base size of a child.
func (t *Tree) newFlexItem(id NodeID, child *node, parent *Style, innerW, innerH float32) flexItem {
	cs := &child.style
	isRow := parent.FlexDirection.IsRow()

	it := flexItem{
		id:     id,
		style:  cs,
		grow:   cs.FlexGrow,
		shrink: cs.FlexShrink,
	}

	m := cs.Margin.resolve(innerW)
	mainStyle := cs.Size.Width
	minMain, minCross := cs.MinSize.Width, cs.MinSize.Height
	maxMain, maxCross := cs.MaxSize.Width, cs.MaxSize.Height
	mainPad, crossPad := cs.Padding.Horizontal(), cs.Padding.Vertical()
	mainSize, crossSize := innerW, innerH
	if isRow {
		it.marginMainStart, it.marginMainEnd = m.Left, m.Right
		it.marginCrossStart, it.marginCrossEnd = m.Top, m.Bottom
		it.autoMainStart, it.autoMainEnd = cs.Margin.Left.IsAuto(), cs.Margin.Right.IsAuto()
		it.autoCrossStart, it.autoCrossEnd = cs.Margin.Top.IsAuto(), cs.Margin.Bottom.IsAuto()
	} else {
		it.marginMainStart, it.marginMainEnd = m.Top, m.Bottom
		it.marginCrossStart, it.marginCrossEnd = m.Left, m.Right
		it.autoMainStart, it.autoMainEnd = cs.Margin.Top.IsAuto(), cs.Margin.Bottom.IsAuto()
		it.autoCrossStart, it.autoCrossEnd = cs.Margin.Left.IsAuto(), cs.Margin.Right.IsAuto()
		mainStyle = cs.Size.Height
		minMain, minCross = minCross, minMain
		maxMain, maxCross = maxCross, maxMain
		mainPad, crossPad = crossPad, mainPad
		mainSize, crossSize = crossSize, mainSize
	}
	if parent.FlexDirection.IsReverse() {
		it.marginMainStart, it.marginMainEnd = it.marginMainEnd, it.marginMainStart
		it.autoMainStart, it.autoMainEnd = it.autoMainEnd, it.autoMainStart
	}
	if parent.FlexWrap == WrapReverse {
		it.marginCrossStart, it.marginCrossEnd = it.marginCrossEnd, it.marginCrossStart
		it.autoCrossStart, it.autoCrossEnd = it.autoCrossEnd, it.autoCrossStart
	}

	// A border box never gets smaller than its padding.
	it.minMain = max(minMain.ResolveOr(mainSize, 0), mainPad)
	it.maxMain = maxMain.ResolveOr(mainSize, inf)
	it.minCross = max(minCross.ResolveOr(crossSize, 0), crossPad)
	it.maxCross = maxCross.ResolveOr(crossSize, inf)

	switch {
	case !cs.FlexBasis.IsAuto():
		it.baseSize = cs.FlexBasis.ResolveOr(mainSize, 0)
	case !mainStyle.IsAuto():
		it.baseSize = mainStyle.ResolveOr(mainSize, 0)
	default:
		content := t.contentSize(id, innerW, innerH)
		it.baseSize = mainOf(isRow, content.Width, content.Height)
	}
	it.hypoMain = clamp(it.baseSize, it.minMain, it.maxMain)

	it.align = cs.AlignSelf
	if it.align == AlignAuto {
		it.align = parent.AlignItems
	}
	if it.align == AlignAuto {
		it.align = AlignStretch
	}
	return it
}

// hypotheticalCross returns the cross size an item takes before stretching.
func (t *Tree) hypotheticalCross(it *flexItem, isRow bool, innerW, innerH float32) float32 {
	crossStyle, crossSize := it.style.Size.Height, innerH
	if !isRow {
		crossStyle, crossSize = it.style.Size.Width, innerW
	}
	if v, ok := crossStyle.Resolve(crossSize); ok {
		return clamp(v, it.minCross, it.maxCross)
	}
	content := t.contentSize(it.id, innerW, innerH)
	if isRow {
		return clamp(content.Height, it.minCross, it.maxCross)
	}
	return clamp(content.Width, it.minCross, it.maxCross)
}

// collectLines breaks items into lines. Without wrapping there is exactly
// one line; otherwise a line ends before the first item whose outer
// hypothetical size would overflow the main size. Every line holds at
// least one item.
func collectLines(items []flexItem, wrap FlexWrap, mainSize, gap float32) []flexLine {
	if wrap == NoWrap {
		return []flexLine{{items: items}}
	}

	var lines []flexLine
	start := 0
	var used float32
	for i := range items {
		outer := items[i].hypoMain + items[i].mainMargins()
		if i > start {
			if used+gap+outer > mainSize+epsilon {
				lines = append(lines, flexLine{items: items[start:i]})
				start = i
				used = outer
				continue
			}
			used += gap
		}
		used += outer
	}
	return append(lines, flexLine{items: items[start:]})
}

// resolveFlexibleLengths grows or shrinks the items of a line to fill the
// main size. Items whose target violates min/max are clamped and frozen and
// the remaining free space is redistributed among the others.
func (l *flexLine) resolveFlexibleLengths(mainSize, gap float32) {
	items := l.items
	gaps := gap * float32(len(items)-1)

	var used float32
	for i := range items {
		used += items[i].hypoMain + items[i].mainMargins()
	}
	growing := used+gaps < mainSize

	// Inflexible items are sized to their hypothetical size right away.
	initialFree := mainSize - gaps
	for i := range items {
		it := &items[i]
		it.mainSize = it.hypoMain
		factor := it.shrink
		if growing {
			factor = it.grow
		}
		it.frozen = factor == 0 ||
			(growing && it.baseSize > it.hypoMain) ||
			(!growing && it.baseSize < it.hypoMain)
		if it.frozen {
			initialFree -= it.mainSize + it.mainMargins()
		} else {
			initialFree -= it.baseSize + it.mainMargins()
		}
	}

	for {
		free := mainSize - gaps
		var sumGrow, sumScaledShrink float32
		unfrozen := 0
		for i := range items {
			it := &items[i]
			free -= it.mainMargins()
			if it.frozen {
				free -= it.mainSize
				continue
			}
			free -= it.baseSize
			sumGrow += it.grow
			sumScaledShrink += it.shrink * it.baseSize
			unfrozen++
		}
		if unfrozen == 0 {
			return
		}

		// Grow factors summing below one only take that fraction of the space.
		if growing && sumGrow < 1 {
			if partial := initialFree * sumGrow; partial < free {
				free = partial
			}
		}

		var totalViolation float32
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			target := it.baseSize
			if growing {
				if sumGrow > 0 {
					target += free * it.grow / sumGrow
				}
			} else if sumScaledShrink > 0 {
				target += free * it.shrink * it.baseSize / sumScaledShrink
			}
			clamped := clamp(target, it.minMain, it.maxMain)
			it.violation = clamped - target
			totalViolation += it.violation
			it.mainSize = clamped
		}

		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			switch {
			case totalViolation > epsilon:
				it.frozen = it.violation > 0
			case totalViolation < -epsilon:
				it.frozen = it.violation < 0
			default:
				it.frozen = true
			}
		}
	}
}

// distributeLines positions the lines of a wrapping container along the
// cross axis according to align-content.
func distributeLines(lines []flexLine, alignContent AlignContent, crossSize, gap float32) {
	n := float32(len(lines))
	total := gap * (n - 1)
	for _, l := range lines {
		total += l.crossSize
	}
	free := crossSize - total

	var offset, between float32
	switch alignContent {
	case AlignContentEnd:
		offset = free
	case AlignContentCenter:
		offset = free / 2
	case AlignContentAuto, AlignContentStretch:
		if free > 0 {
			extra := free / n
			for i := range lines {
				lines[i].crossSize += extra
			}
		}
	case AlignContentSpaceBetween:
		if free > 0 && n > 1 {
			between = free / (n - 1)
		}
	case AlignContentSpaceAround:
		if free > 0 {
			between = free / n
			offset = between / 2
		}
	case AlignContentSpaceEvenly:
		if free > 0 {
			between = free / (n + 1)
			offset = between
		}
	}

	pos := offset
	for i := range lines {
		lines[i].crossPos = pos
		pos += lines[i].crossSize + gap + between
	}
}

// alignItems stretches auto-sized items and positions every item within the
// line's cross band.
func (l *flexLine) alignItems(isRow bool) {
	for i := range l.items {
		it := &l.items[i]
		crossStyle := it.style.Size.Height
		if !isRow {
			crossStyle = it.style.Size.Width
		}
		if it.align == AlignStretch && crossStyle.IsAuto() && !it.autoCrossStart && !it.autoCrossEnd {
			it.crossSize = clamp(l.crossSize-it.crossMargins(), it.minCross, it.maxCross)
		}

		free := l.crossSize - it.crossSize - it.crossMargins()
		var offset float32
		switch {
		case it.autoCrossStart && it.autoCrossEnd:
			offset = max(free, 0) / 2
		case it.autoCrossStart:
			offset = max(free, 0)
		case it.autoCrossEnd:
			offset = 0
		case it.align == AlignEnd:
			offset = free
		case it.align == AlignCenter:
			offset = free / 2
		default: // AlignStart, AlignStretch, AlignBaseline
			offset = 0
		}
		it.crossPos = l.crossPos + it.marginCrossStart + offset
	}
}

// justify positions the items of a line along the main axis. Auto margins
// absorb positive free space before justify-content is applied.
func (l *flexLine) justify(justify Justify, mainSize, gap float32) {
	used := gap * float32(len(l.items)-1)
	autoMargins := 0
	for i := range l.items {
		it := &l.items[i]
		used += it.mainSize + it.mainMargins()
		if it.autoMainStart {
			autoMargins++
		}
		if it.autoMainEnd {
			autoMargins++
		}
	}
	free := mainSize - used

	var offset, between, autoShare float32
	if autoMargins > 0 {
		if free > 0 {
			autoShare = free / float32(autoMargins)
		}
	} else {
		offset = calculateJustifyOffset(justify, free, len(l.items))
		between = calculateJustifySpacing(justify, free, len(l.items))
	}

	pos := offset
	for i := range l.items {
		it := &l.items[i]
		if it.autoMainStart {
			pos += autoShare
		}
		pos += it.marginMainStart
		it.mainPos = pos
		pos += it.mainSize + it.marginMainEnd
		if it.autoMainEnd {
			pos += autoShare
		}
		pos += gap + between
	}
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space. End and center also
// apply to negative free space; the distributed modes fall back to start.
func calculateJustifyOffset(justify Justify, freeSpace float32, itemCount int) float32 {
	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	}
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case JustifySpaceAround:
		return freeSpace / float32(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		if itemCount == 1 {
			return 0
		}
		return freeSpace / float32(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float32(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}
