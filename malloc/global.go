package malloc

import "unsafe"

// Drop-in surface over a process-wide default arena, created lazily
// with Defaultsettings() on first use. A process gets exactly one
// default arena, callers serialize access.

var defaultarena *Arena

func arena0() *Arena {
	if defaultarena == nil {
		defaultarena = NewArena(Defaultsettings())
	}
	return defaultarena
}

// Malloc allocate `n` bytes from the default arena.
func Malloc(n int64) unsafe.Pointer {
	return arena0().Malloc(n)
}

// Calloc allocate `num*size` zero initialized bytes from the default
// arena.
func Calloc(num, size int64) unsafe.Pointer {
	return arena0().Calloc(num, size)
}

// Realloc resize a default-arena block to `n` bytes.
func Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer {
	return arena0().Realloc(ptr, n)
}

// Free a default-arena block.
func Free(ptr unsafe.Pointer) {
	arena0().Free(ptr)
}

// Freeblocks from the default arena.
func Freeblocks() int64 {
	return arena0().Freeblocks()
}

// Freebytes from the default arena.
func Freebytes() int64 {
	return arena0().Freebytes()
}

// Allocatedblocks from the default arena.
func Allocatedblocks() int64 {
	return arena0().Allocatedblocks()
}

// Allocatedbytes from the default arena.
func Allocatedbytes() int64 {
	return arena0().Allocatedbytes()
}

// Metadatabytes from the default arena.
func Metadatabytes() int64 {
	return arena0().Metadatabytes()
}
