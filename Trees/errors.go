package Trees

// EmptyTreeError is returned when an operation needs at least one record.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}
