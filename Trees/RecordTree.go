package Trees

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// RecordTree is an unbalanced binary search tree of Records with no repeated
// IDs. Smaller IDs go left and larger IDs go right; nothing is rotated, so the
// height D of the tree depends on the order of insertions and is n in the
// worst case.
// S is the type of the variable used for storing the size of the tree. Since
// Size returns uint, S shouldn't be any type that overflows when converted to
// uint. Generally, let S be a wide upperbound for the size of the tree.
// The zero value is an empty tree without a Visitor.
// RecordTree isn't safe for concurrent use; guard the whole tree with one lock
// if it's shared.
type RecordTree[S constraints.Unsigned] struct {
	root *node
	sz   S
	config
}

var _ Tree = (*RecordTree[uint])(nil)

// MakeRecordTree returns an empty RecordTree configured by opts.
func MakeRecordTree[S constraints.Unsigned](opts ...Option) *RecordTree[S] {
	u := new(RecordTree[S])
	for _, o := range opts {
		o(&u.config)
	}
	return u
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *RecordTree[S]) IsEmpty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *RecordTree[S]) Size() uint {
	return uint(u.sz)
}

// slot returns the child slot holding id, or the empty slot id would be
// attached to.
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) slot(id int) **node {
	p := &u.root
	for *p != nil && (*p).v.ID != id {
		if id < (*p).v.ID {
			p = &(*p).l
		} else {
			p = &(*p).r
		}
	}
	return p
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) Insert(r Record) bool {
	if p := u.slot(r.ID); *p == nil {
		*p = &node{v: r}
		u.sz++
		return true
	}
	return false
}

// Remove [Tree.Remove]
// Leaves are detached, a node with one child is replaced by that child, and a
// node with two children takes its in-order successor's record before the
// successor is removed from the right subtree.
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) Remove(id int) bool {
	p := u.slot(id)
	if *p == nil {
		return false
	}
	splice(p)
	u.sz--
	log.WithField("id", id).Trace("removed")
	return true
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) Get(id int) (Record, bool) {
	if n := *u.slot(id); n != nil {
		return n.v, true
	}
	return Record{}, false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) Has(id int) bool {
	return *u.slot(id) != nil
}

// Find [Tree.Find]
// Walks the tree in-order with an explicit stack, passing every record before
// the one with id to the configured Visitor. When id is absent every record is
// visited.
// Time: O(n); Space: O(D)
func (u *RecordTree[S]) Find(id int) bool {
	return u.FindFunc(id, u.visit)
}

// FindFunc is Find with visit in place of the configured Visitor. visit may
// be nil.
func (u *RecordTree[S]) FindFunc(id int, visit Visitor) (found bool) {
	u.inOrder(func(n *node) bool {
		if n.v.ID == id {
			found = true
			return false
		}
		if visit != nil {
			visit(n.v)
		}
		return true
	})
	return
}

// FindMin [Tree.FindMin]
// Returns an *EmptyTreeError if u is empty.
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) FindMin() (Record, error) {
	if cur := u.root; cur == nil {
		return Record{}, errors.WithStack(&EmptyTreeError{"FindMin"})
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, nil
	}
}

// FindMax [Tree.FindMax]
// Returns an *EmptyTreeError if u is empty.
// Time: O(D); Space: O(1)
func (u *RecordTree[S]) FindMax() (Record, error) {
	if cur := u.root; cur == nil {
		return Record{}, errors.WithStack(&EmptyTreeError{"FindMax"})
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, nil
	}
}

// MakeEmpty [Tree.MakeEmpty]
// Every node is detached from its children exactly once.
// Time: O(n); Space: O(n)
func (u *RecordTree[S]) MakeEmpty() {
	if u.root == nil {
		return
	}
	st := u.stack()
	st.Push(u.root)
	var released uint
	for !st.Empty() {
		n := mustPop(st)
		if n.l != nil {
			st.Push(n.l)
		}
		if n.r != nil {
			st.Push(n.r)
		}
		n.l, n.r = nil, nil
		released++
	}
	log.WithField("released", released).Trace("emptied")
	u.root, u.sz = nil, 0
}

// Report [Tree.Report]
// The returned sequence stops early if the consumer does.
// Time: amortized O(1) per record; Space: O(D)
func (u *RecordTree[S]) Report() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		u.inOrder(func(n *node) bool {
			return yield(n.v)
		})
	}
}

// Records returns all records in ascending ID order.
func (u *RecordTree[S]) Records() []Record {
	return slices.Collect(u.Report())
}

// Height [Tree.Height]
// Time: O(n); Space: O(n)
func (u *RecordTree[S]) Height() (h uint) {
	type level struct {
		n *node
		d uint
	}
	if u.root == nil {
		return 0
	}
	st := stackOf[level](u.stCap)
	st.Push(level{u.root, 1})
	for !st.Empty() {
		top := mustPop(st)
		h = max(h, top.d)
		if top.n.l != nil {
			st.Push(level{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st.Push(level{top.n.r, top.d + 1})
		}
	}
	return
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *RecordTree[S]) Corrupt() bool {
	var (
		count uint
		prev  *node
		bad   bool
	)
	u.inOrder(func(n *node) bool {
		if prev != nil && prev.v.ID >= n.v.ID {
			bad = true
			return false
		}
		prev = n
		count++
		return true
	})
	return bad || count != u.Size()
}
