// Package yoga exposes layout nodes with the method set of the Yoga
// layout library on top of the flex engine.
//
// Enumerated style properties and edges are passed as the integer codes
// declared in this package. Codes outside a table select that table's
// default, and engine failures never surface as errors: each [Node]
// records the outcome of its last operation in a register read with
// [Node.GetLastError].
//
// Nodes are created from a [Context], which owns the tree they live in and
// a registry from handles back to nodes. [Default] is the context used by
// the module exports.
package yoga
