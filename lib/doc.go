// Package lib implement common functions and features used by
// gomalloc packages.
package lib
