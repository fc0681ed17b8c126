package Trees

import (
	"github.com/g-m-twostay/recordtree/Stacks"
	"github.com/pkg/errors"
)

func stackOf[T any](initCap uint) Stacks.ArrayStack[T] {
	return Stacks.MakeArrayStack[T](initCap)
}

func (u *RecordTree[S]) stack() Stacks.ArrayStack[*node] {
	return stackOf[*node](u.stCap)
}

// mustPop pops a stack the caller has checked to be non-empty. An error here
// means a traversal lost track of its own stack.
func mustPop[T any](st Stacks.ArrayStack[T]) T {
	v, err := st.Pop()
	if err != nil {
		panic(errors.Wrap(err, "traversal stack"))
	}
	return v
}

// inOrder traversal of the tree using an explicit stack: push the left spine,
// pop and visit, then continue with the right child. Stops once f returns false.
// Time: O(n); Space: O(D)
func (u *RecordTree[S]) inOrder(f func(*node) bool) {
	st := u.stack()
	for cur := u.root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		cur = mustPop(st)
		if !f(cur) {
			return
		}
		cur = cur.r
	}
}
