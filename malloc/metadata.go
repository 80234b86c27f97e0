package malloc

import "unsafe"

// metadata is the fixed size header written at the base of every
// block, arena blocks and mapped blocks alike. The user pointer
// handed to the application points one header past the base.
//
// For a free arena block prev/next thread the block into its order's
// free list. For a mapped block they thread the block into the arena's
// mapped-block list. For an allocated arena block they are dead and
// never dereferenced.
type metadata struct {
	size  uint32 // block footprint in bytes, header included
	flags uint32
	prev  uintptr
	next  uintptr
}

const metadatasize = int64(unsafe.Sizeof(metadata{}))

const flagfree = uint32(0x1)

func mdat(block uintptr) *metadata {
	return (*metadata)(unsafe.Pointer(block))
}

func (md *metadata) isfree() bool {
	return md.flags&flagfree != 0
}

func (md *metadata) setfree(free bool) {
	if free {
		md.flags |= flagfree
	} else {
		md.flags &^= flagfree
	}
}

// Metadatasize return the size of the header prefixed to every block.
func Metadatasize() int64 {
	return metadatasize
}
