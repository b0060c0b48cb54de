package huffpack

import "container/heap"

// node is a node of the prefix tree. Leaves carry a symbol and have no
// children; internal nodes always have both children and no symbol.
// left == nil exactly when the node is a leaf.
type node struct {
	symbol      rune
	weight      int
	left, right *node
}

func (n *node) leaf() bool {
	return n.left == nil
}

// queuedNode pairs a node with its insertion sequence number. Equal weights
// are broken by sequence, so the merge order is deterministic: leaves in
// first-seen input order, merged nodes after all leaves in creation order.
type queuedNode struct {
	n   *node
	seq int
}

type nodeQueue []queuedNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].n.weight != q[j].n.weight {
		return q[i].n.weight < q[j].n.weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queuedNode)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// buildTree constructs the prefix tree by repeatedly merging the two
// lightest nodes. A table with a single entry yields a bare leaf as root;
// code generation special-cases that. O(k log k) for k distinct symbols.
func buildTree(ft *freqTable) *node {
	if ft.distinct() == 0 {
		return nil
	}

	q := make(nodeQueue, 0, ft.distinct())
	seq := 0
	for _, r := range ft.order {
		q = append(q, queuedNode{
			n:   &node{symbol: r, weight: ft.counts[r]},
			seq: seq,
		})
		seq++
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(queuedNode)
		right := heap.Pop(&q).(queuedNode)
		heap.Push(&q, queuedNode{
			n: &node{
				weight: left.n.weight + right.n.weight,
				left:   left.n,
				right:  right.n,
			},
			seq: seq,
		})
		seq++
	}
	return q[0].n
}
