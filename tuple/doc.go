// Package tuple provides fixed-size, index-addressable containers of
// components that all share one type.
//
// Every tuple offers the same contract regardless of arity: components are
// read with Get (or the named accessors X, Y, Z and W where those make sense),
// written with SetAt and the bulk setters, exported with ToArray or CopyInto,
// and a fresh tuple of the same shape is produced with the Derive family.
//
// Tup2, Tup3 and Tup4 are backed by arrays and are mutable; their setters
// modify the receiver and return it so that calls can be chained.
// ImmutableTup2, ImmutableTup3 and ImmutableTup4 are value types with no
// in-place mutators. TupN and ImmutableTupN cover arities chosen at run time;
// their length is fixed when they are constructed.
//
// Indexing outside [0, Len()) is a programming error: Get and SetAt panic
// with an *errors.IndexError, which unwraps to errors.ErrIndexOutOfRange.
// TryGet and TrySetAt return the same error instead of panicking.
//
// Tuples are not internally synchronized. A mutable tuple must not be shared
// across goroutines without external synchronization.
package tuple
