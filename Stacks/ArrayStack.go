package Stacks

type arrStack[T any] struct {
	content []T
}

// MakeArrayStack returns an empty slice backed Stack with room for initCap
// items before it grows.
func MakeArrayStack[T any](initCap uint) ArrayStack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (this arrStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this arrStack[T]) Size() uint {
	return uint(len(this.content))
}

// Shrink the backing array to the current size. O(size).
func (this *arrStack[T]) Shrink() {
	nc := make([]T, len(this.content), len(this.content)|1)
	copy(nc, this.content)
	this.content = nc
}

// Clear the stack, zeroing the used slots so the popped values can be collected.
func (this *arrStack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}

func (this *arrStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

func (this *arrStack[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyStackError{"Pop"}
	} else {
		last := len(this.content) - 1
		item = this.content[last]
		this.content[last] = *new(T)
		this.content = this.content[:last]
		return item, nil
	}
}

func (this arrStack[T]) Top() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyStackError{"Top"}
	} else {
		return this.content[len(this.content)-1], nil
	}
}
