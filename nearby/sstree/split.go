package sstree

import "sort"

// splitLeaf splits an overflowing leaf along its higher-variance axis and
// folds in the point that triggered the overflow, then walks the resulting
// "overflow" node upward, cascading further splits as needed.
func (t *Tree) splitLeaf(leaf *node, newPoint Point) {
	oldCX, oldCY := leaf.cx, leaf.cy

	pts := make([]Point, len(leaf.points))
	copy(pts, leaf.points)
	if leaf.vx >= leaf.vy {
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	} else {
		sort.Slice(pts, func(i, j int) bool { return pts[i].Y < pts[j].Y })
	}

	half := len(pts) / 2
	n1 := &node{leaf: true, points: append([]Point{}, pts[:half]...)}
	n2 := &node{leaf: true, points: append([]Point{}, pts[half:]...)}
	recomputeLeaf(n1)
	recomputeLeaf(n2)

	if dist2(oldCX, oldCY, n2.cx, n2.cy) < dist2(oldCX, oldCY, n1.cx, n1.cy) {
		n1, n2 = n2, n1
	}
	// n1 is now the closer of the two to the pre-split centroid; it
	// absorbs the point that caused the overflow.
	n1.points = append(n1.points, newPoint)
	recomputeLeaf(n1)

	t.spliceIn(leaf.parent, leaf, n1, n2)
}

// spliceIn replaces old with n1 in parent's child list (or makes n1/n2 a
// new root if parent is nil), then hands n2 to insertOverflow to place it.
func (t *Tree) spliceIn(parent *node, old, n1, n2 *node) {
	if parent == nil {
		root := &node{children: []*node{n1, n2}, leaf: false}
		n1.parent, n2.parent = root, root
		recomputeInternal(root)
		t.root = root
		return
	}

	n1.parent = parent
	replaceChild(parent, old, n1)
	t.insertOverflow(parent, n2)
}

// insertOverflow places overflow as a child of parent, splitting parent
// (and cascading upward) if that would exceed the fan-out cap.
func (t *Tree) insertOverflow(parent *node, overflow *node) {
	if len(parent.children) < t.fanOut {
		overflow.parent = parent
		parent.children = append(parent.children, overflow)
		propagate(parent)
		return
	}

	oldCX, oldCY := parent.cx, parent.cy
	children := make([]*node, len(parent.children))
	copy(children, parent.children)
	if parent.vx >= parent.vy {
		sort.Slice(children, func(i, j int) bool { return children[i].cx < children[j].cx })
	} else {
		sort.Slice(children, func(i, j int) bool { return children[i].cy < children[j].cy })
	}

	half := len(children) / 2
	n1 := &node{children: append([]*node{}, children[:half]...), leaf: parent.leaf}
	n2 := &node{children: append([]*node{}, children[half:]...), leaf: parent.leaf}
	for _, c := range n1.children {
		c.parent = n1
	}
	for _, c := range n2.children {
		c.parent = n2
	}
	recomputeInternal(n1)
	recomputeInternal(n2)

	if dist2(oldCX, oldCY, n2.cx, n2.cy) < dist2(oldCX, oldCY, n1.cx, n1.cy) {
		n1, n2 = n2, n1
	}
	overflow.parent = n1
	n1.children = append(n1.children, overflow)
	recomputeInternal(n1)

	grandparent := parent.parent
	t.spliceInInternal(grandparent, parent, n1, n2)
}

func (t *Tree) spliceInInternal(grandparent, old, n1, n2 *node) {
	if grandparent == nil {
		root := &node{children: []*node{n1, n2}, leaf: false}
		n1.parent, n2.parent = root, root
		recomputeInternal(root)
		t.root = root
		return
	}

	n1.parent = grandparent
	replaceChild(grandparent, old, n1)
	t.insertOverflow(grandparent, n2)
}

func replaceChild(parent *node, old, replacement *node) {
	for i, c := range parent.children {
		if c == old {
			parent.children[i] = replacement
			return
		}
	}
}
