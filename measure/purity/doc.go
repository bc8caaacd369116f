// Package purity measures how clean a one-period lookup table is.
//
// [Analyze] transforms the table with a single FFT. Because the table holds
// an integer number of periods, the fundamental falls exactly on one bin and
// no window is applied. Distortion introduced by rounding or quantizing the
// table shows up as harmonic and spurious bins, summarized as THD, SFDR and
// SNR. [Stats] reports the time-domain properties of the same table.
package purity
