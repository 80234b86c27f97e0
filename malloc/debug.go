//go:build debug
// +build debug

package malloc

import "unsafe"

import "github.com/bnclabs/gomalloc/lib"

// initblock scribble over the payload of a freshly carved block, so
// that reads of uninitialized memory show up as 0xff garbage.
func initblock(block uintptr, size int64) {
	ptr := unsafe.Pointer(block + uintptr(metadatasize))
	lib.Memset(ptr, 0xff, int(size-metadatasize))
}
