// Package point loads the 3-D point records that the cluster package groups.
//
// Each record is one line of the form
//
//	x,y,z
//
// where x, y and z are real numbers. The trimmed source line doubles as the
// Node identity, and the position of a Node in the returned slice is the
// index every Edge refers to.
//
// Errors:
//
//	ErrMalformedRecord - a line does not hold exactly three real numbers.
//
// Blank lines are skipped; they never produce a Node and never advance the
// index. Line numbers reported in errors are 1-based source lines.
package point
