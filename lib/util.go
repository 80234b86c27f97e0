package lib

import "unsafe"
import "reflect"

// Memcpy copy memory block of length `ln` from `src` to `dst`. This
// function is useful if memory block is obtained outside golang
// runtime. Overlapping blocks are handled correctly, as with memmove.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	var srcnd, dstnd []byte
	srcsl := (*reflect.SliceHeader)(unsafe.Pointer(&srcnd))
	srcsl.Len, srcsl.Cap = ln, ln
	srcsl.Data = (uintptr)(unsafe.Pointer(src))
	dstsl := (*reflect.SliceHeader)(unsafe.Pointer(&dstnd))
	dstsl.Len, dstsl.Cap = ln, ln
	dstsl.Data = (uintptr)(unsafe.Pointer(dst))
	return copy(dstnd, srcnd)
}

// Memset fill memory block of length `ln` at `dst` with byte `b`.
func Memset(dst unsafe.Pointer, b byte, ln int) {
	var dstnd []byte
	dstsl := (*reflect.SliceHeader)(unsafe.Pointer(&dstnd))
	dstsl.Len, dstsl.Cap = ln, ln
	dstsl.Data = (uintptr)(unsafe.Pointer(dst))
	for i := range dstnd {
		dstnd[i] = b
	}
}

// Roundup round `n` up to the next multiple of `m`. `m` shall be a
// power of 2.
func Roundup(n, m int64) int64 {
	return (n + m - 1) &^ (m - 1)
}
