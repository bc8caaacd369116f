// Package export renders lookup tables as text.
//
// The default rendering is a bracketed, comma-separated array of fixed-point
// values, the form that pastes directly into Python, JavaScript or a
// spreadsheet. [Format.Wrapped] folds the same text to a maximum line width
// for terminal output, and [ParseArray] reads either form back.
//
// C initializers for float and Q15 tables are available through
// [Format.CArray] and [Format.CArrayQ15].
package export
