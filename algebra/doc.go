// Package algebra defines the element-type contracts consumed by every
// container in lvlalg, plus ready-made instances for the common scalar types.
//
// The algebra package provides:
//
//   - Ring[E] — the minimal opaque element contract (add, multiply, the two
//     identities, and comparison) that dense, sparse and tensor containers
//     are parameterized over.
//   - Field[E] — Ring[E] extended with negation, subtraction and division,
//     required by operations such as Sub and ElemDiv.
//   - Instances: Float64 / Float32 (epsilon-aware comparison), Complex128,
//     Int, the Bool semiring (OR/AND) and the MinPlus tropical semiring
//     (min/+), which turns matrix powers into shortest-path relaxation.
//
// Instances are small value types; pass them by value when constructing a
// container, e.g. sparse.New(algebra.NewFloat64(), rows, cols).
//
// See the examples in this package for semiring usage patterns.
package algebra
