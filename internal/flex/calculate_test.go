package flex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(w, h float32) Style {
	s := DefaultStyle()
	s.Size = Dimensions{Width: Points(w), Height: Points(h)}
	return s
}

func grow(g float32) Style {
	s := DefaultStyle()
	s.FlexGrow = g
	s.FlexBasis = Points(0)
	return s
}

// build creates a root with the given style and one leaf child per child
// style, lays it out, and returns the child layouts in order.
func build(t *testing.T, root Style, available Size, children ...Style) (Layout, []Layout) {
	t.Helper()
	tree := NewTree()
	ids := make([]NodeID, len(children))
	for i, s := range children {
		ids[i] = tree.NewLeaf(s)
	}
	r, err := tree.NewWithChildren(root, ids...)
	require.NoError(t, err)
	require.NoError(t, tree.ComputeLayout(r, available))

	rootLayout, err := tree.Layout(r)
	require.NoError(t, err)
	out := make([]Layout, len(ids))
	for i, id := range ids {
		out[i], err = tree.Layout(id)
		require.NoError(t, err)
	}
	return rootLayout, out
}

func TestComputeLayout_Root(t *testing.T) {
	type tc struct {
		style     Style
		available Size
		expected  Layout
	}

	tests := map[string]tc{
		"auto fills available space": {
			style:     DefaultStyle(),
			available: Size{Width: 300, Height: 200},
			expected:  Layout{Width: 300, Height: 200},
		},
		"fixed size": {
			style:     fixed(50, 30),
			available: Size{Width: 100, Height: 100},
			expected:  Layout{Width: 50, Height: 30},
		},
		"percent of available": {
			style: func() Style {
				s := DefaultStyle()
				s.Size = Dimensions{Width: Percent(50), Height: Percent(25)}
				return s
			}(),
			available: Size{Width: 200, Height: 100},
			expected:  Layout{Width: 100, Height: 25},
		},
		"max clamps auto": {
			style: func() Style {
				s := DefaultStyle()
				s.MaxSize.Width = Points(80)
				return s
			}(),
			available: Size{Width: 200, Height: 100},
			expected:  Layout{Width: 80, Height: 100},
		},
		"margin offsets root": {
			style: func() Style {
				s := DefaultStyle()
				s.Margin = EdgeValuesAll(Points(5))
				return s
			}(),
			available: Size{Width: 100, Height: 100},
			expected:  Layout{Left: 5, Top: 5, Width: 90, Height: 90},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := build(t, tt.style, tt.available)
			if diff := cmp.Diff(tt.expected, root); diff != "" {
				t.Errorf("root layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayout_Children(t *testing.T) {
	type tc struct {
		root     Style
		children []Style
		expected []Layout
	}

	square := fixed(20, 20)
	tests := map[string]tc{
		"equal grow splits row": {
			root:     fixed(100, 100),
			children: []Style{grow(1), grow(1)},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 50, Height: 100},
				{Left: 50, Top: 0, Width: 50, Height: 100},
			},
		},
		"grow ratio": {
			root:     fixed(120, 10),
			children: []Style{grow(1), grow(2)},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 40, Height: 10},
				{Left: 40, Top: 0, Width: 80, Height: 10},
			},
		},
		"column stacks": {
			root: func() Style {
				s := fixed(100, 100)
				s.FlexDirection = Column
				return s
			}(),
			children: []Style{fixed(20, 30), fixed(20, 30)},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 20, Height: 30},
				{Left: 0, Top: 30, Width: 20, Height: 30},
			},
		},
		"padding offsets child": {
			root: func() Style {
				s := fixed(100, 100)
				s.Padding = EdgeAll(10)
				return s
			}(),
			children: []Style{grow(1)},
			expected: []Layout{{Left: 10, Top: 10, Width: 80, Height: 80}},
		},
		"centered both axes": {
			root: func() Style {
				s := fixed(100, 100)
				s.JustifyContent = JustifyCenter
				s.AlignItems = AlignCenter
				return s
			}(),
			children: []Style{square},
			expected: []Layout{{Left: 40, Top: 40, Width: 20, Height: 20}},
		},
		"justify end": {
			root: func() Style {
				s := fixed(100, 20)
				s.JustifyContent = JustifyEnd
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 60, Top: 0, Width: 20, Height: 20},
				{Left: 80, Top: 0, Width: 20, Height: 20},
			},
		},
		"space between": {
			root: func() Style {
				s := fixed(100, 20)
				s.JustifyContent = JustifySpaceBetween
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 20, Height: 20},
				{Left: 80, Top: 0, Width: 20, Height: 20},
			},
		},
		"space evenly": {
			root: func() Style {
				s := fixed(100, 20)
				s.JustifyContent = JustifySpaceEvenly
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 20, Top: 0, Width: 20, Height: 20},
				{Left: 60, Top: 0, Width: 20, Height: 20},
			},
		},
		"space around": {
			root: func() Style {
				s := fixed(100, 20)
				s.JustifyContent = JustifySpaceAround
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 15, Top: 0, Width: 20, Height: 20},
				{Left: 65, Top: 0, Width: 20, Height: 20},
			},
		},
		"gap between children": {
			root: func() Style {
				s := fixed(100, 20)
				s.Gap = 10
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 20, Height: 20},
				{Left: 30, Top: 0, Width: 20, Height: 20},
			},
		},
		"align end": {
			root: func() Style {
				s := fixed(100, 100)
				s.AlignItems = AlignEnd
				return s
			}(),
			children: []Style{square},
			expected: []Layout{{Left: 0, Top: 80, Width: 20, Height: 20}},
		},
		"align self overrides items": {
			root: func() Style {
				s := fixed(100, 100)
				s.AlignItems = AlignEnd
				return s
			}(),
			children: []Style{func() Style {
				s := fixed(20, 20)
				s.AlignSelf = AlignCenter
				return s
			}()},
			expected: []Layout{{Left: 0, Top: 40, Width: 20, Height: 20}},
		},
		"stretch fills cross axis": {
			root: fixed(100, 60),
			children: []Style{func() Style {
				s := DefaultStyle()
				s.Size.Width = Points(20)
				return s
			}()},
			expected: []Layout{{Left: 0, Top: 0, Width: 20, Height: 60}},
		},
		"auto margins center": {
			root: fixed(100, 100),
			children: []Style{func() Style {
				s := fixed(20, 20)
				s.Margin = EdgeValuesAll(Auto())
				return s
			}()},
			expected: []Layout{{Left: 40, Top: 40, Width: 20, Height: 20}},
		},
		"auto left margin pushes to end": {
			root: fixed(100, 20),
			children: []Style{square, func() Style {
				s := fixed(20, 20)
				s.Margin.Left = Auto()
				return s
			}()},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 20, Height: 20},
				{Left: 80, Top: 0, Width: 20, Height: 20},
			},
		},
		"fixed margins": {
			root: fixed(100, 100),
			children: []Style{func() Style {
				s := fixed(20, 20)
				s.Margin = EdgeValuesAll(Points(5))
				return s
			}()},
			expected: []Layout{{Left: 5, Top: 5, Width: 20, Height: 20}},
		},
		"row reverse": {
			root: func() Style {
				s := fixed(100, 20)
				s.FlexDirection = RowReverse
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 80, Top: 0, Width: 20, Height: 20},
				{Left: 60, Top: 0, Width: 20, Height: 20},
			},
		},
		"column reverse": {
			root: func() Style {
				s := fixed(20, 100)
				s.FlexDirection = ColumnReverse
				return s
			}(),
			children: []Style{square, square},
			expected: []Layout{
				{Left: 0, Top: 80, Width: 20, Height: 20},
				{Left: 0, Top: 60, Width: 20, Height: 20},
			},
		},
		"shrink proportional to basis": {
			root: fixed(100, 10),
			children: []Style{fixed(80, 10), func() Style {
				s := fixed(80, 10)
				s.FlexShrink = 1
				return s
			}()},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 50, Height: 10},
				{Left: 50, Top: 0, Width: 50, Height: 10},
			},
		},
		"no shrink overflows": {
			root: fixed(100, 10),
			children: []Style{func() Style {
				s := fixed(80, 10)
				s.FlexShrink = 0
				return s
			}(), func() Style {
				s := fixed(80, 10)
				s.FlexShrink = 0
				return s
			}()},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 80, Height: 10},
				{Left: 80, Top: 0, Width: 80, Height: 10},
			},
		},
		"max width freezes and redistributes": {
			root: fixed(100, 10),
			children: []Style{func() Style {
				s := grow(1)
				s.MaxSize.Width = Points(30)
				return s
			}(), grow(1)},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 30, Height: 10},
				{Left: 30, Top: 0, Width: 70, Height: 10},
			},
		},
		"min width wins over shrink": {
			root: fixed(100, 10),
			children: []Style{func() Style {
				s := fixed(80, 10)
				s.MinSize.Width = Points(70)
				return s
			}(), fixed(80, 10)},
			expected: []Layout{
				{Left: 0, Top: 0, Width: 70, Height: 10},
				{Left: 70, Top: 0, Width: 30, Height: 10},
			},
		},
		"percent against content box": {
			root: func() Style {
				s := fixed(200, 100)
				s.Padding = EdgeAll(10)
				return s
			}(),
			children: []Style{func() Style {
				s := DefaultStyle()
				s.Size = Dimensions{Width: Percent(50), Height: Percent(50)}
				return s
			}()},
			expected: []Layout{{Left: 10, Top: 10, Width: 90, Height: 40}},
		},
		"display none is skipped": {
			root: fixed(100, 10),
			children: []Style{func() Style {
				s := grow(1)
				s.Display = DisplayNone
				return s
			}(), grow(1)},
			expected: []Layout{
				{},
				{Left: 0, Top: 0, Width: 100, Height: 10},
			},
		},
		"fractional grow leaves space": {
			root:     fixed(100, 10),
			children: []Style{grow(0.5)},
			expected: []Layout{{Left: 0, Top: 0, Width: 50, Height: 10}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, got := build(t, tt.root, Size{Width: 1000, Height: 1000}, tt.children...)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("child layouts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayout_Wrap(t *testing.T) {
	type tc struct {
		wrap         FlexWrap
		alignContent AlignContent
		gap          float32
		expected     []Layout
	}

	item := fixed(40, 20)
	tests := map[string]tc{
		"no wrap shrinks onto one line": {
			wrap: NoWrap,
			expected: []Layout{
				{Left: 0, Top: 0, Width: 33, Height: 20},
				{Left: 33, Top: 0, Width: 34, Height: 20},
				{Left: 67, Top: 0, Width: 33, Height: 20},
			},
		},
		"wrap with lines at start": {
			wrap:         Wrap,
			alignContent: AlignContentStart,
			expected: []Layout{
				{Left: 0, Top: 0, Width: 40, Height: 20},
				{Left: 40, Top: 0, Width: 40, Height: 20},
				{Left: 0, Top: 20, Width: 40, Height: 20},
			},
		},
		"wrap stretches lines by default": {
			wrap: Wrap,
			expected: []Layout{
				{Left: 0, Top: 0, Width: 40, Height: 20},
				{Left: 40, Top: 0, Width: 40, Height: 20},
				{Left: 0, Top: 50, Width: 40, Height: 20},
			},
		},
		"wrap with gap": {
			wrap:         Wrap,
			alignContent: AlignContentStart,
			gap:          10,
			expected: []Layout{
				{Left: 0, Top: 0, Width: 40, Height: 20},
				{Left: 50, Top: 0, Width: 40, Height: 20},
				{Left: 0, Top: 30, Width: 40, Height: 20},
			},
		},
		"wrap lines at end": {
			wrap:         Wrap,
			alignContent: AlignContentEnd,
			expected: []Layout{
				{Left: 0, Top: 60, Width: 40, Height: 20},
				{Left: 40, Top: 60, Width: 40, Height: 20},
				{Left: 0, Top: 80, Width: 40, Height: 20},
			},
		},
		"wrap lines space between": {
			wrap:         Wrap,
			alignContent: AlignContentSpaceBetween,
			expected: []Layout{
				{Left: 0, Top: 0, Width: 40, Height: 20},
				{Left: 40, Top: 0, Width: 40, Height: 20},
				{Left: 0, Top: 80, Width: 40, Height: 20},
			},
		},
		"wrap reverse": {
			wrap:         WrapReverse,
			alignContent: AlignContentStart,
			expected: []Layout{
				{Left: 0, Top: 80, Width: 40, Height: 20},
				{Left: 40, Top: 80, Width: 40, Height: 20},
				{Left: 0, Top: 60, Width: 40, Height: 20},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := fixed(100, 100)
			root.FlexWrap = tt.wrap
			root.AlignContent = tt.alignContent
			root.Gap = tt.gap
			_, got := build(t, root, Size{Width: 100, Height: 100}, item, item, item)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("child layouts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeLayout_Rounding(t *testing.T) {
	_, got := build(t, fixed(100, 10), Size{Width: 100, Height: 10}, grow(1), grow(1), grow(1))

	var total float32
	for _, l := range got {
		total += l.Width
	}
	assert.Equal(t, float32(100), total, "rounded widths must still cover the parent")
	assert.Equal(t, []float32{0, 33, 67}, []float32{got[0].Left, got[1].Left, got[2].Left})
	assert.Equal(t, []float32{33, 34, 33}, []float32{got[0].Width, got[1].Width, got[2].Width})
}

func TestComputeLayout_NoRounding(t *testing.T) {
	tree := NewTree()
	tree.SetRounding(false)
	a := tree.NewLeaf(grow(1))
	b := tree.NewLeaf(grow(1))
	c := tree.NewLeaf(grow(1))
	root, err := tree.NewWithChildren(fixed(100, 10), a, b, c)
	require.NoError(t, err)
	require.NoError(t, tree.ComputeLayout(root, Size{Width: 100, Height: 10}))

	l, err := tree.Layout(b)
	require.NoError(t, err)
	assert.InDelta(t, 100.0/3, l.Left, 1e-3)
	assert.InDelta(t, 100.0/3, l.Width, 1e-3)
}

func TestComputeLayout_Nested(t *testing.T) {
	tree := NewTree()
	grandchild := tree.NewLeaf(fixed(30, 40))
	child, err := tree.NewWithChildren(DefaultStyle(), grandchild)
	require.NoError(t, err)

	rootStyle := fixed(100, 100)
	rootStyle.FlexDirection = Column
	rootStyle.AlignItems = AlignStart
	rootStyle.Padding = EdgeAll(5)
	root, err := tree.NewWithChildren(rootStyle, child)
	require.NoError(t, err)

	require.NoError(t, tree.ComputeLayout(root, Size{Width: 500, Height: 500}))

	childLayout, err := tree.Layout(child)
	require.NoError(t, err)
	assert.Equal(t, Layout{Left: 5, Top: 5, Width: 30, Height: 40}, childLayout, "auto child sizes to its content")

	gcLayout, err := tree.Layout(grandchild)
	require.NoError(t, err)
	assert.Equal(t, Layout{Left: 0, Top: 0, Width: 30, Height: 40}, gcLayout, "positions are parent relative")
	assert.Equal(t, float32(35), childLayout.Right())
	assert.Equal(t, float32(45), childLayout.Bottom())
}

func TestComputeLayout_Relayout(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(grow(1))
	b := tree.NewLeaf(grow(1))
	root, err := tree.NewWithChildren(fixed(100, 10), a, b)
	require.NoError(t, err)
	require.NoError(t, tree.ComputeLayout(root, Size{Width: 100, Height: 10}))

	// Unchanged tree gives the same answer.
	require.NoError(t, tree.ComputeLayout(root, Size{Width: 100, Height: 10}))
	l, err := tree.Layout(b)
	require.NoError(t, err)
	assert.Equal(t, Layout{Left: 50, Width: 50, Height: 10}, l)

	// Restyling one child re-lays out its siblings.
	require.NoError(t, tree.SetStyle(a, grow(3)))
	require.NoError(t, tree.ComputeLayout(root, Size{Width: 100, Height: 10}))
	l, err = tree.Layout(b)
	require.NoError(t, err)
	assert.Equal(t, Layout{Left: 75, Width: 25, Height: 10}, l)

	// Growing the root re-lays out a clean subtree.
	require.NoError(t, tree.SetStyle(root, fixed(200, 10)))
	require.NoError(t, tree.ComputeLayout(root, Size{Width: 200, Height: 10}))
	l, err = tree.Layout(b)
	require.NoError(t, err)
	assert.Equal(t, Layout{Left: 150, Width: 50, Height: 10}, l)
}

func TestComputeLayout_HiddenRoot(t *testing.T) {
	s := fixed(100, 100)
	s.Display = DisplayNone
	root, children := build(t, s, Size{Width: 100, Height: 100}, grow(1))
	assert.Equal(t, Layout{}, root)
	assert.Equal(t, Layout{}, children[0])
}
