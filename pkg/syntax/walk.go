package syntax

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return SkipChildren to skip the node's subtree, or any other non-nil error
// to stop the walk.
type WalkFunc func(n *Node) error

// SkipChildren tells Walk not to descend into the current node.
//
//nolint:errname,gochecknoglobals // Control-flow sentinel in the filepath.SkipDir style.
var SkipChildren = errors.New("skip children")

// Walk performs a pre-order traversal of the tree starting at root.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	count := root.ChildCount()
	for i := range count {
		if err := Walk(root.Child(i), walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil. SkipChildren returned from enter skips the
// subtree but leave is still called for the node.
func WalkWithContext(root *Node, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}

	descend := true
	if enter != nil {
		if err := enter(root); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			descend = false
		}
	}

	if descend {
		count := root.ChildCount()
		for i := range count {
			if err := WalkWithContext(root.Child(i), enter, leave); err != nil {
				return err
			}
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate in document order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node *Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes whose kind is one of kinds.
func FindByKind(root *Node, kinds ...string) []*Node {
	return FindAll(root, func(n *Node) bool {
		return IsKind(n, kinds...)
	})
}

// IsKind reports whether n is non-nil and has one of the given kinds.
func IsKind(n *Node, kinds ...string) bool {
	if n == nil {
		return false
	}
	kind := n.Kind()
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Children returns every child of n, named or not.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	count := n.ChildCount()
	out := make([]*Node, 0, count)
	for i := range count {
		out = append(out, n.Child(i))
	}
	return out
}

// NamedChildren returns the named children of n.
func NamedChildren(n *Node) []*Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*Node, 0, count)
	for i := range count {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// Field returns the child stored under a grammar field name, or nil.
func Field(n *Node, name string) *Node {
	if n == nil {
		return nil
	}
	return n.ChildByFieldName(name)
}

// HasChildKind reports whether any direct child of n has the given kind.
func HasChildKind(n *Node, kind string) bool {
	for _, child := range Children(n) {
		if child.Kind() == kind {
			return true
		}
	}
	return false
}

// Ancestor returns the closest ancestor of n accepted by match, stopping
// (and returning nil) at the first ancestor accepted by stop.
// Either function may be nil.
func Ancestor(n *Node, match, stop func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if match != nil && match(p) {
			return p
		}
		if stop != nil && stop(p) {
			return nil
		}
	}
	return nil
}

// errStopWalk is a sentinel error used to stop walking early.
//
//nolint:gochecknoglobals // Sentinel.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
