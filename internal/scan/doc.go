// Package scan walks a directory tree and reports the largest files or
// the largest non-overlapping directories beneath a root.
//
// Directory sizes are computed in a single bottom-up pass: every file's
// size is added once to each of its ancestor directories, so no subtree
// is ever re-walked. Selection in directory mode is disjoint: a parent
// and one of its descendants never both appear in the result, since the
// parent's aggregate already counts the descendant's bytes.
package scan
