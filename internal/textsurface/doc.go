// Package textsurface draws name cells into a grid of terminal cells.
//
// One terminal column is CellWidth surface units wide and one line is
// RowHeight units tall, so the geometry computed by namecell maps onto
// columns by integer division.
package textsurface
