package malloc

import "fmt"
import "unsafe"

import "github.com/bnclabs/gomalloc/api"
import "github.com/bnclabs/gomalloc/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Arena defines a contiguous data-segment region divided into
// power-of-2 sized blocks, managed with a buddy discipline, plus a
// satellite list of page-mapped blocks for over-sized requests.
type Arena struct {
	// accounting
	nfreeblocks  int64 // blocks resident in free lists
	nfreebytes   int64 // usable bytes resident in free lists
	nallocblocks int64 // every block owned, free and in-use
	nallocbytes  int64 // usable bytes in every block owned
	heap         int64 // bytes reserved or mapped from OS

	freelists []uintptr // one head per order, ascending by address
	mapped    uintptr   // head of the mapped-block list
	base      uintptr   // arena region base, 0 until first reserve

	// configuration
	minblock   int64 // smallest arena block size
	maxorder   int64 // number of size classes above minblock
	maxblock   int64 // minblock << maxorder
	slots      int64 // number of maxblock sized slots in the region
	capacity   int64 // slots * maxblock
	maxrequest int64 // upper bound on a single request

	sys       Syscaller
	pagesize  int64
	logprefix string
}

// NewArena create a new memory arena over the process data-segment.
// The region itself is reserved lazily, on the first small request.
func NewArena(setts s.Settings) *Arena {
	return NewArenaWith(defaultsyscaller(), setts)
}

// NewArenaWith create a new memory arena over an explicit kernel
// surface. Used to run the arena over a simulated heap.
func NewArenaWith(sys Syscaller, setts s.Settings) *Arena {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena := &Arena{sys: sys, pagesize: sys.Pagesize()}
	arena.readsettings(setts)
	arena.freelists = make([]uintptr, arena.maxorder+1)
	arena.logprefix = fmt.Sprintf("[arena %v/%v]", arena.minblock, arena.maxblock)
	arena.logarenasettings()
	return arena
}

//---- operations

// Malloc allocate a block of `n` bytes, implement api.Mallocer{}
// interface. Return nil if `n` is not positive, exceeds maxrequest,
// or memory is exhausted.
func (arena *Arena) Malloc(n int64) unsafe.Pointer {
	if arena.freelists == nil {
		panicerr("%v released", arena.logprefix)
	}
	if n <= 0 || n > arena.maxrequest {
		return nil
	}
	total := n + metadatasize
	if total > arena.maxblock {
		return arena.allocmapped(total)
	}
	if arena.base == 0 {
		if err := arena.reserve(); err != nil {
			errorf("%v reserve(): %v\n", arena.logprefix, err)
			return nil
		}
	}
	block := arena.allocsmall(total)
	if block == 0 {
		return nil
	}
	return unsafe.Pointer(block + uintptr(metadatasize))
}

// Calloc allocate a zero initialized block of `num*size` bytes,
// implement api.Mallocer{} interface.
func (arena *Arena) Calloc(num, size int64) unsafe.Pointer {
	if num <= 0 || size <= 0 || size >= arena.maxrequest {
		return nil
	} else if num > arena.maxrequest/size { // also catches overflow
		return nil
	}
	n := num * size
	if n >= arena.maxrequest {
		return nil
	}
	ptr := arena.Malloc(n)
	if ptr == nil {
		return nil
	}
	lib.Memset(ptr, 0, int(n))
	return ptr
}

// Free the block back to the arena, implement api.Mallocer{}
// interface. Freeing nil, a low address, or an already free block is
// silently ignored.
func (arena *Arena) Free(ptr unsafe.Pointer) {
	if ptr == nil || uintptr(ptr) <= uintptr(metadatasize) {
		return
	}
	block := uintptr(ptr) - uintptr(metadatasize)
	if int64(mdat(block).size) > arena.maxblock {
		arena.freemapped(block)
		return
	}
	arena.freesmall(block)
}

// Release implement api.Mallocer{} interface. Live mapped blocks are
// unmapped and the books reset. The data-segment region stays with
// the process, a released arena shall not be used again.
func (arena *Arena) Release() {
	for block := arena.mapped; block != 0; {
		next := mdat(block).next
		if err := arena.sys.Munmap(block, int64(mdat(block).size)); err != nil {
			errorf("%v munmap(%x): %v\n", arena.logprefix, block, err)
		}
		block = next
	}
	infof("%v released heap:%v\n", arena.logprefix,
		humanize.Bytes(uint64(arena.heap)))
	arena.freelists, arena.mapped, arena.base = nil, 0, 0
	arena.nfreeblocks, arena.nfreebytes = 0, 0
	arena.nallocblocks, arena.nallocbytes, arena.heap = 0, 0, 0
}

//---- local functions

// reserve the arena region from the data-segment, aligned to a
// multiple of its own size, and seed every slot into the top order
// free list. The alignment is what keeps the XOR buddy identity valid
// at every order.
func (arena *Arena) reserve() error {
	brk, err := arena.sys.Sbrk(0)
	if err != nil {
		return err
	}
	align := uintptr(arena.capacity)
	pad := (align - brk%align) % align
	base, err := arena.sys.Sbrk(pad + uintptr(arena.capacity))
	if err != nil {
		return err
	}
	arena.base = base + pad
	arena.heap += arena.capacity
	for slot := int64(0); slot < arena.slots; slot++ {
		block := arena.base + uintptr(slot*arena.maxblock)
		md := mdat(block)
		md.size, md.flags, md.prev, md.next = uint32(arena.maxblock), flagfree, 0, 0
		arena.insertfree(arena.maxorder, block)
	}
	arena.nallocblocks += arena.slots
	arena.nallocbytes += arena.slots * (arena.maxblock - metadatasize)
	infof("%v reserved base:%x capacity:%v\n", arena.logprefix,
		arena.base, humanize.Bytes(uint64(arena.capacity)))
	return nil
}

var _ api.Mallocer = &Arena{}
