package design

// DefaultMaxDepth bounds traversal cost on pathological trees.
const DefaultMaxDepth = 10

// Visitor receives each element in pre-order along with its depth. Returning
// false stops the walk entirely.
type Visitor func(el *Element, depth int) bool

// Prune decides whether a subtree should be skipped before visiting it.
type Prune func(el *Element, depth int) bool

// Walker performs a depth-first, pre-order traversal with an explicit stack.
// Recursion is deliberately avoided: host documents nest deeply enough that
// stack exhaustion is a real failure mode.
type Walker struct {
	// MaxDepth is the maximum depth descended into. Zero means
	// DefaultMaxDepth. Subtrees past the limit are silently skipped,
	// never an error.
	MaxDepth int
	// Prune, when non-nil, skips matching subtrees (the element itself is
	// not visited).
	Prune Prune
}

type walkFrame struct {
	el    *Element
	depth int
}

// Walk visits root and its descendants in pre-order. Children are pushed in
// reverse so the visitation sequence matches document order; dependent passes
// observe the same node order on every run.
func (w Walker) Walk(root *Element, visit Visitor) {
	if root == nil || visit == nil {
		return
	}
	maxDepth := w.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	stack := make([]walkFrame, 0, 64)
	stack = append(stack, walkFrame{el: root, depth: 0})

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.Prune != nil && w.Prune(frame.el, frame.depth) {
			continue
		}
		if !visit(frame.el, frame.depth) {
			return
		}
		if frame.depth >= maxDepth || !frame.el.HasChildren() {
			continue
		}
		for i := len(frame.el.Children) - 1; i >= 0; i-- {
			child := frame.el.Children[i]
			if child == nil {
				continue
			}
			stack = append(stack, walkFrame{el: child, depth: frame.depth + 1})
		}
	}
}

// CountElements returns the number of elements Walk would visit.
func (w Walker) CountElements(root *Element) int {
	n := 0
	w.Walk(root, func(*Element, int) bool {
		n++
		return true
	})
	return n
}

// FindByID returns the first element with the given id, or nil.
func (w Walker) FindByID(root *Element, id string) *Element {
	var found *Element
	w.Walk(root, func(el *Element, _ int) bool {
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}
