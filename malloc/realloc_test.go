package malloc

import "testing"
import "unsafe"

import "github.com/stretchr/testify/require"

func TestReallocShrink(t *testing.T) {
	arena, _ := newtestarena()
	ptr := arena.Malloc(100)
	payload := int64(mdat(uintptr(ptr)-uintptr(metadatasize)).size) - metadatasize

	// shrinking, or asking for the same payload, is a no-op.
	require.Equal(t, ptr, arena.Realloc(ptr, payload))
	require.Equal(t, ptr, arena.Realloc(ptr, 10))
	require.Equal(t, ptr, arena.Realloc(ptr, 1))
}

func TestReallocArguments(t *testing.T) {
	arena, _ := newtestarena()
	ptr := arena.Malloc(100)

	// bad sizes fail, the old block stays valid.
	require.Nil(t, arena.Realloc(ptr, 0))
	require.Nil(t, arena.Realloc(ptr, arena.maxrequest+1))
	require.False(t, mdat(uintptr(ptr)-uintptr(metadatasize)).isfree())

	// nil behaves as plain Malloc.
	fresh := arena.Realloc(nil, 100)
	require.NotNil(t, fresh)
	arena.Free(fresh)
	arena.Free(ptr)
}

func TestReallocInplace(t *testing.T) {
	arena, _ := newtestarena()

	a := arena.Malloc(100)
	b := arena.Malloc(100)
	arena.Free(b)
	ablocks := arena.Allocatedblocks()

	// a's right buddy is free, growing doubles a in place.
	r := arena.Realloc(a, 200)
	require.Equal(t, a, r)
	md := mdat(uintptr(r) - uintptr(metadatasize))
	require.Equal(t, uint32(256), md.size)
	require.False(t, md.isfree())
	// the absorbed buddy's identity is gone.
	require.Equal(t, ablocks-1, arena.Allocatedblocks())
	verifyfreelists(t, arena)
}

func TestReallocInplaceChain(t *testing.T) {
	arena, _ := newtestarena()

	// on a fresh arena the first 128-block has every buddy up the
	// chain free, so it can grow in place many orders at once.
	a := arena.Malloc(100)
	r := arena.Realloc(a, 1000)
	require.Equal(t, a, r)
	md := mdat(uintptr(r) - uintptr(metadatasize))
	require.Equal(t, uint32(1024), md.size)
	verifyfreelists(t, arena)
}

func TestReallocLeftBuddy(t *testing.T) {
	arena, _ := newtestarena()

	a := arena.Malloc(100) // base
	b := arena.Malloc(100) // base+128
	payload := unsafe.Slice((*byte)(b), 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	arena.Free(a)

	// b's buddy is on its left, growing relocates the payload down.
	r := arena.Realloc(b, 200)
	require.Equal(t, a, r)
	md := mdat(uintptr(r) - uintptr(metadatasize))
	require.Equal(t, uint32(256), md.size)
	moved := unsafe.Slice((*byte)(r), 100)
	for i := range moved {
		require.Equal(t, byte(i), moved[i])
	}
	verifyfreelists(t, arena)
}

func TestReallocCopy(t *testing.T) {
	arena, _ := newtestarena()

	a := arena.Malloc(100)
	b := arena.Malloc(100) // pins a's right buddy
	payload := unsafe.Slice((*byte)(a), 100)
	for i := range payload {
		payload[i] = byte(i)
	}

	r := arena.Realloc(a, 300)
	require.NotNil(t, r)
	require.NotEqual(t, a, r)
	moved := unsafe.Slice((*byte)(r), 100)
	for i := range moved {
		require.Equal(t, byte(i), moved[i])
	}
	// the old block went back to its free list.
	require.True(t, mdat(uintptr(a)-uintptr(metadatasize)).isfree())
	verifyfreelists(t, arena)
	arena.Free(r)
	arena.Free(b)
}

func TestReallocMapped(t *testing.T) {
	arena, sim := newtestarena()

	ptr := arena.Malloc(200000)
	payload := unsafe.Slice((*byte)(ptr), 200000)
	for i := 0; i < 1024; i++ {
		payload[i] = byte(i)
	}

	// shrink is still a no-op on the mapped path.
	require.Equal(t, ptr, arena.Realloc(ptr, 150000))

	// growing a mapped block always copies into a fresh mapping.
	r := arena.Realloc(ptr, 400000)
	require.NotNil(t, r)
	require.NotEqual(t, ptr, r)
	require.Equal(t, 1, sim.mappings())
	moved := unsafe.Slice((*byte)(r), 400000)
	for i := 0; i < 1024; i++ {
		require.Equal(t, byte(i), moved[i])
	}
	arena.Free(r)
	require.Equal(t, 0, sim.mappings())
}

func TestReallocAcrossPaths(t *testing.T) {
	arena, sim := newtestarena()

	// growing an arena block past maxblock migrates it to a mapping.
	a := arena.Malloc(100)
	payload := unsafe.Slice((*byte)(a), 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	r := arena.Realloc(a, 200000)
	require.NotNil(t, r)
	require.Equal(t, 1, sim.mappings())
	moved := unsafe.Slice((*byte)(r), 100)
	for i := range moved {
		require.Equal(t, byte(i), moved[i])
	}
	// the arena block was freed and recoalesced.
	require.Equal(t, arena.slots, arena.Freeblocks())
	arena.Free(r)
}

func BenchmarkArenaRealloc(b *testing.B) {
	arena, _ := newtestarena()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ptr := arena.Malloc(100)
		ptr = arena.Realloc(ptr, 200)
		arena.Free(ptr)
	}
}
