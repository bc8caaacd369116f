// Package lut builds one-period trigonometric lookup tables.
//
// A table holds N samples of sin, cos or cos-1 evaluated at the phases
// 2*pi*i/N for i in [0, N). The sample at phase 2*pi is never stored, so the
// table wraps seamlessly when indexed modulo N. Tables are immutable once
// built and can be indexed with a raw integer phase through [Table.At], the
// same way firmware indexes a 12-bit phase accumulator into a 4096-entry
// array.
package lut
