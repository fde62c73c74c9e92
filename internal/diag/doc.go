// Package diag defines structured diagnostics for the lexkit toolchain.
// Invariants:
//   - A Diagnostic's Loc is the location reported by the phase that raised it
//     (for lexical errors, the position mandated by the scanner contract).
//   - Error values returned by scanning carry the same code/location and
//     convert losslessly into Diagnostics.
//   - A Bag never grows past its configured maximum.
package diag
