// Package flex implements a pure-Go flexbox layout engine.
//
// A [Tree] owns every node; nodes are addressed by [NodeID] and carry a
// [Style]. Row/column directions and their reverses, wrapping, justify and
// align modes, align-content, padding, margin (including auto margins), gap,
// min/max constraints, flex grow/shrink/basis and percentage dimensions are
// supported. Content sizes come from children only: there is no text
// measurement, so baseline alignment falls back to start.
//
// The main entry point is [Tree.ComputeLayout], which lays out the subtree
// rooted at a node and stores a [Layout] for every node in it. Positions are
// relative to the parent's border box.
package flex
