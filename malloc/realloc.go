package malloc

import "unsafe"

import "github.com/bnclabs/gomalloc/lib"

// Realloc resize the block pointed by `old` to `n` bytes, implement
// api.Mallocer{} interface. Shrinking is a no-op returning `old`.
// Growing an arena block first tries to widen it in place by
// absorbing free buddies, and falls back to allocate-copy-free.
// Mapped blocks always take the copy path. On failure return nil and
// leave the old block intact, `Realloc(old, 0)` is a failure.
func (arena *Arena) Realloc(old unsafe.Pointer, n int64) unsafe.Pointer {
	if n <= 0 || n > arena.maxrequest {
		return nil
	}
	if old == nil {
		return arena.Malloc(n)
	}
	block := uintptr(old) - uintptr(metadatasize)
	payload := int64(mdat(block).size) - metadatasize
	if n <= payload {
		return old
	}
	if int64(mdat(block).size) > arena.maxblock {
		return arena.realloccopy(old, n, payload)
	}
	if to := arena.growinplace(block, n); to != 0 {
		return unsafe.Pointer(to + uintptr(metadatasize))
	}
	return arena.realloccopy(old, n, payload)
}

// growinplace try to widen the block to hold `n` user bytes by
// absorbing its buddy, order after order, up to maxblock. The first
// pass only speculates, nothing is touched unless the whole buddy
// chain is absorbable. Return the block's final base, which moves
// down when a buddy on the left is absorbed, or 0 when the block
// cannot grow in place.
func (arena *Arena) growinplace(block uintptr, n int64) uintptr {
	need := n + metadatasize
	hypothetical, anchor := int64(mdat(block).size), block
	for hypothetical < arena.maxblock && hypothetical < need {
		buddy := anchor ^ uintptr(hypothetical)
		bmd := mdat(buddy)
		if !bmd.isfree() || int64(bmd.size) != hypothetical {
			return 0
		}
		if buddy < anchor {
			anchor = buddy
		}
		hypothetical <<= 1
	}
	if hypothetical < need {
		return 0
	}

	md := mdat(block)
	userlen := int(int64(md.size) - metadatasize)
	size := int64(md.size)
	for size < hypothetical {
		buddy := block ^ uintptr(size)
		arena.removefree(arena.order(size), buddy)
		arena.nallocblocks--
		arena.nallocbytes += metadatasize
		if buddy < block {
			lib.Memcpy(
				unsafe.Pointer(buddy+uintptr(metadatasize)),
				unsafe.Pointer(block+uintptr(metadatasize)), userlen)
			block = buddy
		}
		size <<= 1
		md = mdat(block)
		md.size = uint32(size)
		md.setfree(false)
	}
	return block
}

func (arena *Arena) realloccopy(
	old unsafe.Pointer, n, payload int64) unsafe.Pointer {

	fresh := arena.Malloc(n)
	if fresh == nil {
		return nil
	}
	if payload > n {
		payload = n
	}
	lib.Memcpy(fresh, old, int(payload))
	arena.Free(old)
	return fresh
}
