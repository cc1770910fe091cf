package ebitenhost

// Node is a display node of a Host.
type Node struct {
	ID int

	// Component is the name of the component instantiated into the node.
	Component string
	// Text is drawn at the node's top-left corner.
	Text string

	host      *Host
	parent    *Node
	children  []*Node
	style     map[string]string
	className string
	released  bool
}

// Style returns the value of a style property, or "" if unset.
func (n *Node) Style(name string) string {
	return n.style[name]
}

// ClassName returns the node's class list as set by the session.
func (n *Node) ClassName() string {
	return n.className
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// Released reports whether the node was released by its session.
func (n *Node) Released() bool {
	return n.released
}

// isAncestorOf reports whether n is node or one of its ancestors.
func (n *Node) isAncestorOf(node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// removeChild removes child from n.children without clearing child.parent.
func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func (n *Node) release() {
	n.released = true
	for _, c := range n.children {
		c.parent = nil
		c.release()
	}
	n.children = nil
	n.parent = nil
}
