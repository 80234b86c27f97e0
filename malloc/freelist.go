package malloc

// Free lists are intrusive, threaded through block headers inside the
// arena region, one doubly linked list per buddy order. Lists are kept
// ascending by address, lowest address block is always at the head.

// order return the smallest order whose block size can hold `size`
// bytes, saturating at maxorder.
func (arena *Arena) order(size int64) int64 {
	k, blocksize := int64(0), arena.minblock
	for k < arena.maxorder && blocksize < size {
		k, blocksize = k+1, blocksize<<1
	}
	return k
}

// insertfree thread `block` into the order-k free list keeping the
// list sorted by address. Caller shall mark the block free before
// inserting it.
func (arena *Arena) insertfree(k int64, block uintptr) {
	md := mdat(block)
	var prev uintptr
	next := arena.freelists[k]
	for next != 0 && next < block {
		prev, next = next, mdat(next).next
	}
	md.prev, md.next = prev, next
	if prev != 0 {
		mdat(prev).next = block
	} else {
		arena.freelists[k] = block
	}
	if next != 0 {
		mdat(next).prev = block
	}
	arena.nfreeblocks++
	arena.nfreebytes += int64(md.size) - metadatasize
}

// removefree unlink `block` from the order-k free list.
func (arena *Arena) removefree(k int64, block uintptr) {
	md := mdat(block)
	if md.prev != 0 {
		mdat(md.prev).next = md.next
	} else {
		arena.freelists[k] = md.next
	}
	if md.next != 0 {
		mdat(md.next).prev = md.prev
	}
	md.prev, md.next = 0, 0
	arena.nfreeblocks--
	arena.nfreebytes -= int64(md.size) - metadatasize
}

// freechain return the blocks on the order-k free list, in list order.
func (arena *Arena) freechain(k int64) []uintptr {
	var blocks []uintptr
	for block := arena.freelists[k]; block != 0; block = mdat(block).next {
		blocks = append(blocks, block)
	}
	return blocks
}
