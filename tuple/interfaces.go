package tuple

// Readable is the read side shared by every tuple.
type Readable[T any] interface {
	// Len returns the number of components. It never changes.
	Len() int

	// Get returns component i, panicking if i is not in [0, Len()).
	Get(i int) T

	// ToArray returns a freshly allocated slice of the components in index order.
	ToArray() []T

	// CopyInto writes the components into dst and returns the filled slice.
	// dst is reused when it has enough capacity, otherwise a new slice is allocated.
	CopyInto(dst []T) []T
}

// Readable2 is anything with an x and a y component.
type Readable2[T any] interface {
	X() T
	Y() T
}

// Readable3 is anything with x, y and z components.
type Readable3[T any] interface {
	Readable2[T]
	Z() T
}

// Readable4 is anything with x, y, z and w components.
type Readable4[T any] interface {
	Readable3[T]
	W() T
}

// Writable is the write side of a mutable tuple. Every setter returns S,
// the concrete tuple, so calls can be chained.
type Writable[T any, S any] interface {
	SetAt(i int, v T) S
	Fill(v T) S
	SetFrom(other Readable[T]) S
	SetSlice(values []T) S
}

// ReadWritable is a mutable tuple.
type ReadWritable[T any, S any] interface {
	Readable[T]
	Writable[T, S]
}

// Deriver builds new tuples of the same shape as the receiver without
// touching the receiver.
type Deriver[T any, S any] interface {
	DeriveFrom(other Readable[T]) S
	DeriveScalar(v T) S
	DeriveSlice(values []T) S
}
