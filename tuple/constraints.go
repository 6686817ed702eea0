package tuple

// Signed is satisfied by every signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by every unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by every floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is the set of component types that support the numeric
// predicates (IsZeroWithMargin and friends).
type Number interface {
	Signed | Unsigned | Float
}
