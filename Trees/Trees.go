package Trees

import "iter"

// Tree represents an ordered set of Records keyed by Record.ID, implemented
// using nodes. Receivers returning a bool as the last value report whether
// the operation changed or found anything; a false result is never an error.
// Receivers returning an error fail only when the tree is empty.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree interface {
	//IsEmpty reports whether the tree holds no records.
	IsEmpty() bool
	//Insert r to the Tree. Returns false, leaving the tree unchanged, if a
	//record with the same ID is already present.
	Insert(r Record) bool
	//Remove the record with the given id. Returns false if there is none.
	Remove(id int) bool
	//Find whether a record with the given id exists by walking the tree in-order.
	//Exact visitation side effects depend on implementation.
	Find(id int) bool
	//FindMin returns the record with the smallest ID.
	FindMin() (Record, error)
	//FindMax returns the record with the largest ID.
	FindMax() (Record, error)
	//Get the record with the given id.
	Get(id int) (Record, bool)
	//Has a record with the given id. Unlike Find, Has only descends one
	//path and has no side effects.
	Has(id int) bool
	//Size of the tree.
	Size() uint
	//Height is the number of nodes on the longest root to leaf path.
	Height() uint
	//MakeEmpty releases every node.
	MakeEmpty()
	//Report returns the records in ascending ID order. Each call returns a
	//fresh sequence. The tree must not be modified while a sequence is
	//being consumed.
	Report() iter.Seq[Record]
	//Corrupt returns whether the tree violates the ordering of IDs or its
	//size bookkeeping.
	Corrupt() bool
}
