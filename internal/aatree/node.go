package aatree

type node[K, V any] struct {
	left, right *node[K, V]
	level       int
	key         K
	value       V
}

func level[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.level
}

// skew removes a left horizontal link by rotating right.
func skew[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil && n.left.level == n.level {
		l := n.left
		n.left = l.right
		l.right = n
		return l
	}
	return n
}

// split removes a double right horizontal link by rotating left and
// promoting the middle node.
func split[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil && n.right.right != nil && n.right.right.level == n.level {
		r := n.right
		n.right = r.left
		r.left = n
		r.level++
		return r
	}
	return n
}

// rebalance restores the level invariants on the way back up from a
// removal in one of n's subtrees.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	want := min(level(n.left), level(n.right)) + 1
	if want < n.level {
		n.level = want
		if n.right != nil && n.right.level > want {
			n.right.level = want
		}
	}
	n = skew(n)
	if n.right != nil {
		n.right = skew(n.right)
		if n.right.right != nil {
			n.right.right = skew(n.right.right)
		}
	}
	n = split(n)
	if n.right != nil {
		n.right = split(n.right)
	}
	return n
}
