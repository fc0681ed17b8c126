package Stacks

// Stack is a LIFO container. Pop and Top on an empty Stack return
// an *EmptyStackError and the zero value of T.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Top() (T, error)
	Empty() bool
}

type ArrayStack[T any] interface {
	Stack[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyStackError struct {
	Op string
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot " + e.Op + "."
}
