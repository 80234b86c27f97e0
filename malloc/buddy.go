package malloc

// Buddy discipline over the arena region. A block of size s at
// address a has its buddy at a^s, the other half of their size-2s
// parent. The identity holds at every order because the region base
// is aligned to a multiple of the full region size.

// allocsmall carve a block of at least `total` bytes out of the
// smallest sufficient free block, splitting down to the target order.
// Splits keep the lower half and donate the upper half to the next
// lower free list. Return 0 when every sufficient list is empty.
func (arena *Arena) allocsmall(total int64) uintptr {
	target := arena.order(total)
	k := target
	for k <= arena.maxorder && arena.freelists[k] == 0 {
		k++
	}
	if k > arena.maxorder {
		errorf("%v exhausted, no free block for %v bytes\n",
			arena.logprefix, total)
		return 0
	}
	block := arena.freelists[k]
	arena.removefree(k, block)
	md := mdat(block)
	md.setfree(false)
	size := int64(md.size)
	for ; k > target; k-- {
		size >>= 1
		sibling := block + uintptr(size)
		smd := mdat(sibling)
		smd.size, smd.flags, smd.prev, smd.next = uint32(size), flagfree, 0, 0
		arena.insertfree(k-1, sibling)
		md.size = uint32(size)
		// one more header came into being, eating its payload
		arena.nallocblocks++
		arena.nallocbytes -= metadatasize
	}
	initblock(block, size)
	return block
}

// freesmall return the block to its free list, first merging it with
// its buddy, order after order, while the buddy is whole and free.
func (arena *Arena) freesmall(block uintptr) {
	md := mdat(block)
	if md.isfree() { // double free
		return
	}
	md.setfree(true)
	size := int64(md.size)
	k := arena.order(size)
	for k < arena.maxorder {
		buddy := block ^ uintptr(size)
		bmd := mdat(buddy)
		if !bmd.isfree() || int64(bmd.size) != size {
			break
		}
		arena.removefree(k, buddy)
		arena.nallocblocks--
		arena.nallocbytes += metadatasize
		if buddy < block {
			block, md = buddy, bmd
		}
		size <<= 1
		md.size = uint32(size)
		k++
	}
	arena.insertfree(k, block)
}
