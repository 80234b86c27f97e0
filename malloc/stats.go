package malloc

import humanize "github.com/dustin/go-humanize"

//---- statistics and introspection

// Freeblocks implement api.Mallocer{} interface.
func (arena *Arena) Freeblocks() int64 {
	return arena.nfreeblocks
}

// Freebytes implement api.Mallocer{} interface.
func (arena *Arena) Freebytes() int64 {
	return arena.nfreebytes
}

// Allocatedblocks implement api.Mallocer{} interface.
func (arena *Arena) Allocatedblocks() int64 {
	return arena.nallocblocks
}

// Allocatedbytes implement api.Mallocer{} interface.
func (arena *Arena) Allocatedbytes() int64 {
	return arena.nallocbytes
}

// Metadatabytes implement api.Mallocer{} interface.
func (arena *Arena) Metadatabytes() int64 {
	return metadatasize * arena.nallocblocks
}

// Slabs implement api.Mallocer{} interface, return the block size of
// every buddy order, ascending.
func (arena *Arena) Slabs() []int64 {
	sizes := make([]int64, 0, arena.maxorder+1)
	for k, size := int64(0), arena.minblock; k <= arena.maxorder; k++ {
		sizes = append(sizes, size)
		size <<= 1
	}
	return sizes
}

// Info implement api.Mallocer{} interface. `capacity` is the
// configured region size, `heap` the bytes actually reserved or
// mapped from OS, `alloc` the usable bytes handed to application,
// `overhead` the bytes consumed by block headers.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	alloc = arena.nallocbytes - arena.nfreebytes
	return arena.capacity, arena.heap, alloc, arena.Metadatabytes()
}

// Utilization implement api.Mallocer{} interface, return per-order
// block sizes and the percentage of region capacity resident free at
// that order.
func (arena *Arena) Utilization() ([]int, []float64) {
	sizes := make([]int, 0, arena.maxorder+1)
	zs := make([]float64, 0, arena.maxorder+1)
	for k, size := int64(0), arena.minblock; k <= arena.maxorder; k++ {
		freebytes := int64(len(arena.freechain(k))) * size
		sizes = append(sizes, int(size))
		zs = append(zs, (float64(freebytes)/float64(arena.capacity))*100)
		size <<= 1
	}
	return sizes, zs
}

// Logstatistics dump the arena book-keeping via the package logger,
// humanized when `humanized` is true.
func (arena *Arena) Logstatistics(humanized bool) {
	capacity, heap, alloc, overhead := arena.Info()
	if humanized {
		infof("%v capacity:%v heap:%v alloc:%v overhead:%v\n",
			arena.logprefix,
			humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
			humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)))
	} else {
		infof("%v capacity:%v heap:%v alloc:%v overhead:%v\n",
			arena.logprefix, capacity, heap, alloc, overhead)
	}
	infof("%v freeblocks:%v freebytes:%v allocblocks:%v allocbytes:%v\n",
		arena.logprefix, arena.nfreeblocks, arena.nfreebytes,
		arena.nallocblocks, arena.nallocbytes)
}
