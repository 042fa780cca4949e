// Package curve implements the edwards25519 group on arbitrary-precision
// integers.
//
// # Contents
//
//   - Modular field helpers with explicit failure modes (Mod, ModInverse,
//     ModPow)
//   - An affine twisted Edwards point type with the complete group law
//     (Add, Double, ScalarMult)
//   - The 32-byte compressed wire encoding (Encode, Decode)
//   - Scalar reduction and little-endian scalar serialisation
//
// # Notes
//
// Every operation is a pure function of its inputs; points and scalars are
// never mutated in place. The byte-to-integer convention is little-endian
// throughout, for both point coordinates and scalars. Performance is not a
// goal: this package trades the usual fixed-limb field arithmetic for code
// whose structure can be read off the group law directly.
package curve
