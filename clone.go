package brtypes

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// Store and Send transform a clone so the caller's value is never mutated.
// Value types in this package are immutable, so structs holding only strings
// and value types can return the receiver:
//
//	func (c Customer) Clone() Customer { return c }
//
// For types with slices, maps or pointers, copy them:
//
//	func (c Customer) Clone() Customer {
//	    phones := make([]string, len(c.Phones))
//	    copy(phones, c.Phones)
//	    c.Phones = phones
//	    return c
//	}
type Cloner[T any] interface {
	Clone() T
}
