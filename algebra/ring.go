// SPDX-License-Identifier: MIT
// Package algebra: element contracts.
// This file defines ONLY the two interfaces the containers consume. Concrete
// instances live in their own files (real.go, complex.go, integer.go,
// boolean.go, tropical.go). Containers hold the Ring they were built with and
// never assume anything about E beyond these methods.

package algebra

// Ring is the minimal element contract every container operates over.
// Semantically a commutative semiring: Add and Mul are associative and
// commutative, Zero is the additive identity and absorbing for Mul,
// One is the multiplicative identity.
//
// Implementations must be small, copyable value types; containers store
// them by value and call their methods on every element touch, so methods
// must be cheap, allocation-free and side-effect free.
//
// Eq is the comparison predicate used by Equal/IsIdentity/IsSymmetric style
// checks. Floating-point instances compare within a configured tolerance
// (see Float64.Eps); exact types compare with ==.
type Ring[E any] interface {
	// Add returns a+b in the ring.
	Add(a, b E) E
	// Mul returns a*b in the ring.
	Mul(a, b E) E
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// IsZero reports whether a equals the additive identity under Eq.
	IsZero(a E) bool
	// IsOne reports whether a equals the multiplicative identity under Eq.
	IsOne(a E) bool
	// Eq reports whether a and b are equal under the ring's comparison policy.
	Eq(a, b E) bool
}

// Field extends Ring with the inverse operations. Operations that need
// subtraction or division (Sub, ElemDiv) require their container's ring to
// implement Field and fail otherwise; see AsField.
//
// Division by the additive identity follows the element type's own
// semantics: IEEE Inf/NaN for the float instances, a panic for integer
// types that would choose to implement Field. No instance in this package
// masks or rewrites that behavior.
type Field[E any] interface {
	Ring[E]

	// Neg returns the additive inverse of a.
	Neg(a E) E
	// Sub returns a-b.
	Sub(a, b E) E
	// Div returns a/b under the element type's division semantics.
	Div(a, b E) E
}

// AsField reports whether r also implements Field[E] and returns it if so.
// Containers use this to gate subtraction/division at runtime without
// widening the Ring contract.
func AsField[E any](r Ring[E]) (Field[E], bool) {
	f, ok := r.(Field[E])
	return f, ok
}
