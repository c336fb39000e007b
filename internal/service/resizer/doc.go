// Package resizer runs one batch pass: discover source images, drop the ones
// that already have resized copies, ask the operator, then write one resized
// copy per configured width percentage.
//
// Resized files double as the skip state for later runs; there is no other
// persistence.
package resizer
