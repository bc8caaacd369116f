// Package plot shows a table as a line chart in a desktop window.
//
// [Show] blocks until the window is closed. The chart has axes but no
// labels or title text inside the plot area; x is the sample index and y
// the sample value, autoscaled to the data range.
package plot
