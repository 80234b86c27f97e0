package malloc

import "unsafe"

import "github.com/bnclabs/gomalloc/lib"

// Requests whose footprint exceeds maxblock bypass the buddy region
// entirely. Each one gets its own anonymous page mapping, rounded up
// to the page size, and is threaded on an intrusive doubly linked
// list so Release can find live mappings.

func (arena *Arena) allocmapped(total int64) unsafe.Pointer {
	rounded := lib.Roundup(total, arena.pagesize)
	base, err := arena.sys.Mmap(rounded)
	if err != nil {
		errorf("%v mmap(%v): %v\n", arena.logprefix, rounded, err)
		return nil
	}
	md := mdat(base)
	md.size, md.flags = uint32(rounded), 0
	md.prev, md.next = 0, arena.mapped
	if arena.mapped != 0 {
		mdat(arena.mapped).prev = base
	}
	arena.mapped = base
	arena.nallocblocks++
	arena.nallocbytes += rounded - metadatasize
	arena.heap += rounded
	initblock(base, rounded)
	debugf("%v mapped %v bytes at %x\n", arena.logprefix, rounded, base)
	return unsafe.Pointer(base + uintptr(metadatasize))
}

func (arena *Arena) freemapped(block uintptr) {
	md := mdat(block)
	if md.prev != 0 {
		mdat(md.prev).next = md.next
	} else {
		arena.mapped = md.next
	}
	if md.next != 0 {
		mdat(md.next).prev = md.prev
	}
	size := int64(md.size)
	arena.nallocblocks--
	arena.nallocbytes -= size - metadatasize
	arena.heap -= size
	if err := arena.sys.Munmap(block, size); err != nil {
		errorf("%v munmap(%x): %v\n", arena.logprefix, block, err)
	}
	debugf("%v unmapped %v bytes at %x\n", arena.logprefix, size, block)
}
