package api

import "unsafe"

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Slabs allocatable block sizes, one per buddy order.
	Slabs() (sizes []int64)

	// Malloc allocate a block of `n` bytes. Returned pointer points
	// to the first usable byte, one header past the block's base.
	Malloc(n int64) unsafe.Pointer

	// Calloc allocate a zero initialized block of `num*size` bytes.
	Calloc(num, size int64) unsafe.Pointer

	// Realloc resize the block pointed by `ptr` to `n` bytes. On
	// failure return nil and leave the old block intact.
	Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer

	// Free the block back to arena, or unmap it if the block was
	// served by the OS mapping path.
	Free(ptr unsafe.Pointer)

	// Freeblocks return the number of blocks resident in free lists.
	Freeblocks() int64

	// Freebytes return the usable bytes resident in free lists.
	Freebytes() int64

	// Allocatedblocks return the number of blocks currently owned
	// by the arena, free and in-use, including mapped blocks.
	Allocatedblocks() int64

	// Allocatedbytes return the usable bytes currently owned by the
	// arena, free and in-use, including mapped blocks.
	Allocatedbytes() int64

	// Metadatabytes return bytes consumed by block headers.
	Metadatabytes() int64

	// Info of memory accounting for this arena.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization map of block-size and free memory at that size.
	Utilization() ([]int, []float64)

	// Release arena resources. Mapped blocks are unmapped, the
	// data-segment region stays with the process.
	Release()
}
