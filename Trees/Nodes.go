package Trees

// Record is the value stored in a Tree. Identity is determined solely by ID.
type Record struct {
	ID   int
	Age  int
	Name string
}

// A node in the RecordTree
// nil is the absent node. A node exclusively owns l and r; there are no
// parent pointers, so a node is detached by overwriting the slot that holds it.
type node struct {
	v    Record
	l, r *node
}

// splice removes the node held by the non-empty slot p, keeping the nodes
// below it ordered. A node with two children takes the record of its in-order
// successor, which is then spliced out of the right subtree in its place.
// Time: O(D)
func splice(p **node) {
	cur := *p
	if cur.l == nil {
		*p = cur.r
	} else if cur.r == nil {
		*p = cur.l
	} else {
		s := &cur.r
		for (*s).l != nil {
			s = &(*s).l
		}
		cur.v = (*s).v
		splice(s) //(*s).l is nil, so this doesn't recurse again.
		return
	}
	cur.l, cur.r = nil, nil
}
