// SPDX-License-Identifier: MIT

// Package spy draws the sparsity pattern of a sparse.Matrix.
//
// Every stored entry becomes one square glyph at its (column, row) cell, with
// row 0 at the top so the picture reads like the dense listing. Cells that hold
// the common value are left blank. Redundant entries left behind by Add or
// Multiply share a cell and therefore a glyph.
//
// Rendering goes through gonum.org/v1/plot; Render writes PNG, SVG or PDF.
package spy
